package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	addAs      string
	addSection string
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Import an existing document into the content collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		rel := addAs
		if rel == "" {
			section := cfg.DefaultSection
			if cmd.Flags().Changed("section") {
				section = addSection
			}
			rel = resolveDocPath(filepath.Base(file), section, false)
		}
		s, err := openSite()
		if err != nil {
			return err
		}
		doc, err := s.Import(file, rel)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Document added: %s\n", doc.Slug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addAs, "as", "", "path within the content directory (default: <section>/<file name>)")
	addCmd.Flags().StringVarP(&addSection, "section", "s", "", "section to import into (default from default_section)")
}
