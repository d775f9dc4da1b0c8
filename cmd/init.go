package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/sitedocs/internal/config"
	"github.com/KaramelBytes/sitedocs/internal/utils"
)

var (
	initContentDir string
	initSection    string
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a new site with an empty content directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		cfgPath := filepath.Join(root, cfgpkg.FileName)
		// Refuse to overwrite an existing site.
		if _, err := os.Stat(cfgPath); err == nil {
			return fmt.Errorf("site already exists at %s", root)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat site config: %w", err)
		}
		c := cfgpkg.Defaults()
		c.ContentDir = initContentDir
		c.DefaultSection = initSection
		contentDir := c.ResolveContentDir(root)
		if err := utils.EnsureDir(filepath.Join(contentDir, initSection)); err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Site initialized: %s\n", root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initContentDir, "content-dir", "content", "content directory relative to the site root")
	initCmd.Flags().StringVarP(&initSection, "section", "s", "posts", "default section for new documents")
}
