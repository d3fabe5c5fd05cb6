package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/promptline"
)

// favoriteColors is the fixed candidate set for the colors demo.
var favoriteColors = []string{
	"Blue", "Red", "Green", "Yellow", "Orange", "Purple",
	"Brown", "Pink", "Gray", "Black", "White",
}

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "Pick your favorite color from a fixed set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newConsole(cmd)
			promptline.ClearTerminal(c)

			choice, err := promptline.SelectString(c, promptline.StringChoiceOpts{
				Prompt:  "Enter your favorite color!",
				Repeat:  "That isn't a color!",
				Choices: favoriteColors,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Your favorite color is %s!\n", choice)
			return nil
		},
	}
}
