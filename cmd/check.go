package cmd

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/sitedocs/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate front matter across the collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scanSite()
		if err != nil {
			return err
		}
		errs := s.Check()
		out := cmd.OutOrStdout()
		if len(errs) == 0 {
			fmt.Fprintf(out, "✓ %d documents OK\n", s.Store().Len())
			return nil
		}
		for _, e := range errs {
			var verr *content.ValidationError
			if !errors.As(e, &verr) {
				fmt.Fprintf(out, "✗ %v\n", e)
				continue
			}
			fields := verr.Fields()
			for _, k := range slices.Sorted(maps.Keys(fields)) {
				fmt.Fprintf(out, "✗ %s: %s %s\n", verr.Path, k, fields[k])
			}
		}
		total := s.Store().Len() + len(s.Skipped())
		return fmt.Errorf("%d of %d documents failed validation", len(errs), total)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
