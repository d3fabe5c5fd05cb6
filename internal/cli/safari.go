package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/rshade/promptline"
)

// safariAnimals is the default item set for the paginated list demo.
var safariAnimals = []string{
	"Hippo", "Elephant", "Lion", "Crocodile", "Giraffe", "Cheetah",
	"Hyena", "Rhino", "Buffalo", "Gorilla", "Mongoose", "Impala",
	"Mosquito", "Bird",
}

const safariHeader = "Animals seen on the Super Cool Safari:"

// listFile is the YAML shape accepted by --file.
type listFile struct {
	Header string   `yaml:"header"`
	Items  []string `yaml:"items"`
}

func newSafariCmd() *cobra.Command {
	var (
		file    string
		perPage int
		noClear bool
	)

	cmd := &cobra.Command{
		Use:   "safari",
		Short: "Browse a paginated list of safari sightings",
		Long: "Renders a list one page at a time with N/P/S/E navigation. " +
			"Pass --file to browse your own YAML list instead of the built-in safari.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := safariHeader
			items := safariAnimals
			if file != "" {
				loaded, err := loadListFile(file)
				if err != nil {
					return err
				}
				if loaded.Header != "" {
					header = loaded.Header
				}
				if len(loaded.Items) > 0 {
					items = loaded.Items
				}
			}

			c := newConsole(cmd)
			promptline.ClearTerminal(c)
			err := promptline.PaginatedList(c, items, promptline.ListOpts{
				Header:        header,
				ItemsPerPage:  perPage,
				ClearOnUpdate: !noClear,
			})
			if err != nil {
				return err
			}

			pages := (len(items) + perPage - 1) / perPage
			if pages < 1 {
				pages = 1
			}
			p := message.NewPrinter(language.English)
			p.Fprintf(cmd.OutOrStdout(), "Toured %d items across %d pages.\n", len(items), pages)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML file with a header and items to browse")
	cmd.Flags().IntVar(&perPage, "per-page", 3, "items shown per page")
	cmd.Flags().BoolVar(&noClear, "no-clear", false, "do not clear the terminal between pages")
	return cmd
}

func loadListFile(path string) (listFile, error) {
	var lf listFile
	data, err := os.ReadFile(path)
	if err != nil {
		return lf, fmt.Errorf("reading list file: %w", err)
	}
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return lf, fmt.Errorf("parsing list file %s: %w", path, err)
	}
	return lf, nil
}
