// Package cli implements the promptline demo commands. Each subcommand is a
// small interactive program exercising the public prompt helpers, wired to
// the cobra command's input and output streams so tests can script them.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/promptline"
	"github.com/rshade/promptline/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root cobra command for the promptline demo CLI.
// It wires up logging and the demo subcommands (colors, guess, safari).
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "promptline",
		Short:        "Interactive input helper demos",
		Long:         "Promptline: validated prompts, choice selection, and paginated lists for the terminal",
		Version:      ver,
		SilenceUsage: true,
		Example: `  # Pick a favorite color from a fixed choice set
  promptline colors

  # Play the number guessing game up to 500
  promptline guess --max 500

  # Browse a YAML list three items at a time
  promptline safari --file animals.yaml --per-page 3`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			level := "info"
			if debug {
				level = "debug"
			}
			logger = logging.ComponentLogger(logging.NewLogger(level, cmd.ErrOrStderr()), "cli")

			// The demos block on line reads; warn when stdin is the real
			// terminal but not interactive (piped input never is os.Stdin
			// here because tests redirect via SetIn).
			if f, ok := cmd.InOrStdin().(*os.File); ok && !isTerminal(f) {
				logger.Warn().Msg("standard input is not a terminal; demos expect interactive input")
			}

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newColorsCmd(), newGuessCmd(), newSafariCmd())

	return cmd
}

// newConsole builds a prompt console over the command's streams so demos
// honor cobra's SetIn/SetOut redirection.
func newConsole(cmd *cobra.Command) *promptline.Console {
	return promptline.New(cmd.InOrStdin(), cmd.OutOrStdout(), promptline.WithLogger(logger))
}
