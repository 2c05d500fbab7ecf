// Package cli implements the agentlint command: discovery of agent
// definition files, validation orchestration, result presentation, and
// the exit-code contract. Validation rules themselves live in
// pkg/validator; this package is deliberately thin glue around it.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/logger"
)

var rootLog = logger.New("cli:root")

// NewRootCommand creates the agentlint root command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agentlint [agent-file]",
		Short: "Validate agent definition files",
		Long: `Validate agent definition files: markdown documents with YAML-style
frontmatter (name, description, optional tools) followed by the agent's
system prompt.

With no arguments, every .md file under the agents directory is validated
recursively, skipping template and documentation files. With a file
argument, only that file is validated.

Exit status is 0 when every validated agent passes and 1 otherwise.

Examples:
  agentlint                     # Validate all agents under ./agents
  agentlint agents/reviewer.md  # Validate a single agent file
  agentlint --dir custom/path   # Validate from a custom directory
  agentlint --json              # Output results in JSON format`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			configPath, _ := cmd.Flags().GetString("config")
			jsonOutput, _ := cmd.Flags().GetBool("json")

			rootLog.Printf("Running agentlint: args=%v, dir=%q, json=%t", args, dir, jsonOutput)

			if len(args) == 1 {
				return RunSingle(args[0], jsonOutput)
			}

			cfg, err := LoadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Dir
			}
			if dir == "" {
				dir = constants.GetAgentsDir()
			}
			return RunBatch(dir, cfg.SkipMarkers(), jsonOutput)
		},
	}

	cmd.Flags().StringP("dir", "d", "", "Agents directory (default: agents)")
	cmd.Flags().StringP("config", "c", constants.DefaultConfigFile, "Runner config file")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")

	return cmd
}
