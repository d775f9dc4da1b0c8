package cmd

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/sitedocs/internal/content"
	"github.com/KaramelBytes/sitedocs/internal/utils"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a document's front matter and body outline",
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
		blocks := d.Blocks()
		out := cmd.OutOrStdout()
		if showJSON {
			b, err := utils.PrettyJSON(struct {
				*content.Document
				Blocks []content.Block `json:"blocks"`
			}{d, blocks})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		fmt.Fprintf(out, "slug:  %s\n", d.Slug)
		fmt.Fprintf(out, "path:  %s\n", d.Path)
		fmt.Fprintf(out, "title: %s\n", d.Title)
		fmt.Fprintf(out, "date:  %s\n", d.Date.Format(time.RFC3339))
		fmt.Fprintf(out, "draft: %t\n", d.Draft)
		for _, k := range slices.Sorted(maps.Keys(d.Extra)) {
			fmt.Fprintf(out, "%s: %v\n", k, d.Extra[k])
		}
		fmt.Fprintf(out, "words: %d (~%d min read)\n", utils.CountWords(d.Body), utils.ReadingMinutes(d.Body))
		if len(blocks) == 0 {
			fmt.Fprintln(out, "(empty body)")
			return nil
		}
		fmt.Fprintln(out, "outline:")
		for _, b := range blocks {
			label := string(b.Kind)
			switch {
			case b.Kind == content.BlockHeading:
				label = fmt.Sprintf("h%d", b.Level)
			case b.Kind == content.BlockCode && b.Language != "":
				label = "code:" + b.Language
			}
			fmt.Fprintf(out, "  [%s] %s\n", label, utils.Truncate(firstLine(b.Text), 60))
			for _, l := range b.Links {
				fmt.Fprintf(out, "      -> %s\n", l)
			}
		}
		return nil
	},
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print JSON instead of text")
}
