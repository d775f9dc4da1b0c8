package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/sitedocs/internal/config"
	"github.com/KaramelBytes/sitedocs/internal/logging"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set sitedocs configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		if cfg.Path() != "" {
			fmt.Fprintf(out, "# %s\n", cfg.Path())
		}
		fmt.Fprintf(out, "site_root: %s\n", siteRoot)
		fmt.Fprintf(out, "content_dir: %s\n", cfg.ContentDir)
		fmt.Fprintf(out, "default_section: %s\n", cfg.DefaultSection)
		fmt.Fprintf(out, "extension: %s\n", cfg.Extension)
		fmt.Fprintf(out, "list_drafts: %t\n", cfg.ListDrafts)
		fmt.Fprintf(out, "new_draft: %t\n", cfg.NewDraft)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile, siteRoot)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "content_dir":
			if strings.TrimSpace(val) == "" {
				return fmt.Errorf("content_dir cannot be empty")
			}
			cfg.ContentDir = val
		case "default_section":
			cfg.DefaultSection = strings.Trim(val, "/")
		case "extension":
			if !strings.HasPrefix(val, ".") {
				val = "." + val
			}
			switch val {
			case ".md", ".markdown", ".html":
				cfg.Extension = val
			default:
				return fmt.Errorf("invalid extension: %s (use .md, .markdown or .html)", val)
			}
		case "list_drafts":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for list_drafts: %v", val)
			}
			cfg.ListDrafts = b
		case "new_draft":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for new_draft: %v", val)
			}
			cfg.NewDraft = b
		case "log_level":
			cfg.LogLevel = logging.ParseLevel(val).String()
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
