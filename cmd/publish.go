package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pubUndo bool

var publishCmd = &cobra.Command{
	Use:   "publish <slug>",
	Short: "Clear (or with --unpublish, set) a document's draft flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSite()
		if err != nil {
			return err
		}
		d, err := s.Get(args[0])
		if err != nil {
			return err
		}
		want := pubUndo
		if d.Draft == want {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Nothing to do: %s already has draft=%t\n", d.Slug, want)
			return nil
		}
		next := d.Clone()
		next.Draft = want
		if err := s.Update(next); err != nil {
			return err
		}
		if want {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Unpublished %s\n", d.Slug)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Published %s\n", d.Slug)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().BoolVar(&pubUndo, "unpublish", false, "mark the document as a draft again")
}
