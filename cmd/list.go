package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/sitedocs/internal/utils"
)

var (
	listDrafts bool
	listJSON   bool
)

type listEntry struct {
	Slug    string    `json:"slug"`
	Path    string    `json:"path"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Draft   bool      `json:"draft"`
	Words   int       `json:"words"`
	Minutes int       `json:"reading_minutes"`
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts := cfg.ListDrafts
		if cmd.Flags().Changed("drafts") {
			drafts = listDrafts
		}
		s, err := openSite()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if listJSON {
			entries := []listEntry{}
			for d := range s.Documents(drafts) {
				entries = append(entries, listEntry{
					Slug:    d.Slug,
					Path:    d.Path,
					Title:   d.Title,
					Date:    d.Date,
					Draft:   d.Draft,
					Words:   utils.CountWords(d.Body),
					Minutes: utils.ReadingMinutes(d.Body),
				})
			}
			b, err := utils.PrettyJSON(entries)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		found := false
		for d := range s.Documents(drafts) {
			found = true
			date := "----------"
			if !d.Date.IsZero() {
				date = d.Date.Format("2006-01-02")
			}
			mark := ""
			if d.Draft {
				mark = " [draft]"
			}
			fmt.Fprintf(out, "- %s  %s  %s%s\n", date, d.Slug, d.Title, mark)
		}
		if !found {
			fmt.Fprintln(out, "(no documents)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listDrafts, "drafts", false, "include drafts (default from list_drafts)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of text")
}
