package cli

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/rshade/promptline"
)

func newGuessCmd() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if max < 1 {
				return fmt.Errorf("--max must be at least 1, got %d", max)
			}
			secret := rand.Intn(max) + 1
			return runGuess(cmd.OutOrStdout(), newConsole(cmd), secret, max)
		},
	}

	cmd.Flags().IntVar(&max, "max", 100, "upper bound for the secret number")
	return cmd
}

// runGuess plays one round of the guessing game against a known secret.
// Split from the command so tests can fix the secret.
func runGuess(w io.Writer, c *promptline.Console, secret, max int) error {
	min := 1
	guesses := 0

	promptline.ClearTerminal(c)
	for {
		guess, err := promptline.GetNumber(c, promptline.NumberOpts[int]{
			Prompt: fmt.Sprintf("Pick a number between %d and %d!", min, max),
			Repeat: "Try Again.",
			Min:    &min,
			Max:    &max,
		})
		if err != nil {
			return err
		}

		promptline.ClearTerminal(c)
		guesses++
		switch {
		case guess < secret:
			fmt.Fprintf(w, "%d is too low!\n", guess)
		case guess > secret:
			fmt.Fprintf(w, "%d is too high!\n", guess)
		default:
			fmt.Fprintf(w, "YOU WIN!\n%d was the secret number!\nNumber of guesses: %d\n", secret, guesses)
			logger.Debug().Int("guesses", guesses).Msg("game won")
			return nil
		}
	}
}
