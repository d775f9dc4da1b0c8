package cmd

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/sitedocs/internal/content"
	"github.com/KaramelBytes/sitedocs/internal/parser"
)

var (
	newTitle   string
	newDate    string
	newDraft   bool
	newSection string
	newBody    string
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Author a new document with title, date and draft front matter",
	Example: `  sitedocs new "Switching site generators"
  sitedocs new notes/clean-architecture-part-2 --title "Clean Architecture, part 2"
  sitedocs new about.md --draft=false --date 2020-10-11`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		section := cfg.DefaultSection
		if cmd.Flags().Changed("section") {
			section = newSection
		}
		rel := resolveDocPath(name, section, true)

		title := newTitle
		if title == "" {
			base := path.Base(content.NormalizePath(name))
			if parser.Supported(base) {
				base = strings.TrimSuffix(base, path.Ext(base))
			}
			title = base
		}
		date := time.Now().Truncate(time.Second)
		if newDate != "" {
			d, err := parser.ParseDate(newDate)
			if err != nil {
				return err
			}
			date = d
		}
		draft := cfg.NewDraft
		if cmd.Flags().Changed("draft") {
			draft = newDraft
		}

		s, err := openSite()
		if err != nil {
			return err
		}
		doc := content.New(rel, title, date, draft, newBody)
		if err := s.Create(doc); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Document created: %s (%s)\n", doc.Slug, rel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "document title (default: derived from name)")
	newCmd.Flags().StringVar(&newDate, "date", "", "publication date, RFC 3339 or YYYY-MM-DD (default: now)")
	newCmd.Flags().BoolVar(&newDraft, "draft", true, "mark the document as a draft (default from new_draft)")
	newCmd.Flags().StringVarP(&newSection, "section", "s", "", "section for bare names (default from default_section)")
	newCmd.Flags().StringVar(&newBody, "body", "", "initial body text")
}
