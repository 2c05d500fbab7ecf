// Package logger provides namespaced debug loggers gated by the DEBUG
// environment variable, following the npm debug package conventions:
//
//	DEBUG=*              - enables all loggers
//	DEBUG=validator:*    - enables all loggers in a namespace
//	DEBUG=ns1,ns2        - enables specific namespaces
//	DEBUG=ns:*,-ns:skip  - enables a namespace but excludes patterns
//
// Debug output goes to stderr and never mixes with validation output.
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/githubnext/agentlint/pkg/timeutil"
	"github.com/githubnext/agentlint/pkg/tty"
)

// Logger is a debug logger for one namespace. The enabled state is fixed
// at construction from the DEBUG environment variable.
type Logger struct {
	namespace string
	enabled   bool
	color     string

	mu      sync.Mutex
	lastLog time.Time
}

var (
	debugEnv    = os.Getenv("DEBUG")
	debugColors = os.Getenv("DEBUG_COLORS") != "0"
	stderrIsTTY = tty.IsStderrTerminal()
)

// ANSI 256-color codes, readable on light and dark backgrounds. Each
// namespace hashes to a stable palette entry.
var colorPalette = []string{
	"\033[38;5;33m",  // blue
	"\033[38;5;35m",  // green
	"\033[38;5;166m", // orange
	"\033[38;5;125m", // purple
	"\033[38;5;37m",  // cyan
	"\033[38;5;161m", // magenta
	"\033[38;5;136m", // yellow
	"\033[38;5;124m", // red
}

const colorReset = "\033[0m"

// New creates a Logger for the given namespace.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace, debugEnv),
		color:     selectColor(namespace),
		lastLog:   time.Now(),
	}
}

// Enabled reports whether this logger emits output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted message with the namespace prefix and the time
// elapsed since the previous message.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs a message with the namespace prefix and the time elapsed
// since the previous message.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	if l.color != "" {
		fmt.Fprintf(os.Stderr, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, timeutil.FormatDuration(diff))
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, message, timeutil.FormatDuration(diff))
}

func selectColor(namespace string) string {
	if !debugColors || !stderrIsTTY {
		return ""
	}
	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled reports whether a namespace matches the comma-separated
// DEBUG patterns. Exclusion patterns (leading -) take precedence.
func computeEnabled(namespace, patterns string) bool {
	enabled := false
	for _, pattern := range strings.Split(patterns, ",") {
		pattern = strings.TrimSpace(pattern)
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern matches a namespace against a pattern with at most one
// wildcard (*).
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(namespace, suffix)
	}
	parts := strings.SplitN(pattern, "*", 2)
	return strings.HasPrefix(namespace, parts[0]) && strings.HasSuffix(namespace, parts[1])
}
