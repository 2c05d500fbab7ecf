package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/iter"

	"github.com/githubnext/agentlint/pkg/console"
	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/fileutil"
	"github.com/githubnext/agentlint/pkg/logger"
	"github.com/githubnext/agentlint/pkg/validator"
)

var runnerLog = logger.New("cli:runner")

// ErrValidationFailed signals that at least one agent failed validation.
// The failure details have already been printed when it is returned, so
// main only maps it to the exit code.
var ErrValidationFailed = errors.New("validation failed")

// validateFile reads and validates one agent file. Read failures become a
// single-error result instead of invoking the validator, so a bad file
// never aborts a batch.
func validateFile(path string) *validator.ValidationResult {
	content, err := os.ReadFile(path)
	if err != nil {
		runnerLog.Printf("Read failed: path=%s, err=%v", path, err)
		return validator.ReadFailure(path, err)
	}
	return validator.Validate(string(content), path)
}

// RunSingle validates one agent file and prints its result. The path must
// exist before any validation is attempted.
func RunSingle(path string, jsonOutput bool) error {
	if !fileutil.FileExists(path) {
		return fmt.Errorf("file not found: %s", path)
	}

	result := validateFile(path)
	if jsonOutput {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		printSingleResult(result)
	}

	if !result.Valid {
		return ErrValidationFailed
	}
	return nil
}

// RunBatch discovers every agent file under dir, validates each, prints
// per-file results and the aggregate summary. Validation fans out across
// files; iter.Map returns results in input order, so output stays
// deterministic and per-call accumulators never race.
func RunBatch(dir string, skipMarkers []string, jsonOutput bool) error {
	if !fileutil.DirExists(dir) {
		return fmt.Errorf("agents directory not found: %s", dir)
	}

	files, err := fileutil.FindFiles(dir, constants.AgentFileExtension, skipMarkers)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	runnerLog.Printf("Validating batch: dir=%s, files=%d", dir, len(files))

	results := iter.Map(files, func(path *string) *validator.ValidationResult {
		return validateFile(*path)
	})

	if jsonOutput {
		if err := printJSON(results); err != nil {
			return err
		}
		return batchVerdict(results)
	}

	fmt.Println(console.FormatInfoMessage("Validating all agents..."))
	fmt.Println(console.Rule())

	passed := 0
	warnings := 0
	for _, result := range results {
		printBatchResult(dir, result)
		if result.Valid {
			passed++
		}
		warnings += len(result.Warnings)
	}

	fmt.Println()
	fmt.Println(console.Rule())
	fmt.Printf("Total agents: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", len(results)-passed)
	fmt.Printf("Total warnings: %d\n", warnings)
	fmt.Println()

	if passed == len(results) {
		fmt.Println(console.FormatSuccessMessage("✅ All agents passed validation!"))
		return nil
	}
	fmt.Println(console.FormatErrorMessage(fmt.Sprintf("❌ %d agents failed validation", len(results)-passed)))
	return ErrValidationFailed
}

// printBatchResult prints one file's outcome inside a batch run.
func printBatchResult(dir string, result *validator.ValidationResult) {
	display := result.File
	if rel, err := filepath.Rel(dir, result.File); err == nil {
		display = rel
	}

	fmt.Printf("\nValidating: %s\n", console.FormatLocationMessage(display))
	if result.Valid {
		fmt.Println(console.FormatSuccessMessage("✅ PASSED"))
	} else {
		fmt.Println(console.FormatErrorMessage("❌ FAILED"))
		for _, msg := range result.Errors {
			fmt.Println(console.FormatErrorFinding(msg))
		}
	}
	for _, msg := range result.Warnings {
		fmt.Println(console.FormatWarningFinding(msg))
	}
}

// printSingleResult prints the outcome of a single-file run.
func printSingleResult(result *validator.ValidationResult) {
	if result.Valid {
		fmt.Println(console.FormatSuccessMessage("✅ Agent validation PASSED"))
	} else {
		fmt.Println(console.FormatErrorMessage("❌ Agent validation FAILED"))
		for _, msg := range result.Errors {
			fmt.Println(console.FormatErrorFinding(msg))
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Println()
		fmt.Println(console.FormatWarningMessage("⚠️  Warnings:"))
		for _, msg := range result.Warnings {
			fmt.Println(console.FormatWarningFinding(msg))
		}
	}
}

// printJSON emits machine-readable results to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// batchVerdict maps a batch of results to the exit-code contract without
// printing anything; used by JSON mode where the payload is the output.
func batchVerdict(results []*validator.ValidationResult) error {
	for _, result := range results {
		if !result.Valid {
			return ErrValidationFailed
		}
	}
	return nil
}
