package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/KaramelBytes/sitedocs/internal/config"
	"github.com/KaramelBytes/sitedocs/internal/content"
	"github.com/KaramelBytes/sitedocs/internal/logging"
	"github.com/KaramelBytes/sitedocs/internal/parser"
	"github.com/KaramelBytes/sitedocs/internal/site"
	"github.com/KaramelBytes/sitedocs/internal/utils"
)

var (
	// Global flags
	cfgFile     string
	rootDirFlag string
	debug       bool

	// Loaded configuration and the site root it was resolved against
	cfg      *cfgpkg.Global
	siteRoot string
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "sitedocs",
	Short:         "sitedocs: manage the content collection of a static site",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `sitedocs keeps the markdown content of a static site in order: every document
carries title, date and draft front matter, slugs derived from file paths stay
unique, and listings come out newest first, the way the site generator will
publish them.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <root>/sitedocs.yaml, then ~/.sitedocs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDirFlag, "root", "", "site root directory (default: nearest parent with sitedocs.yaml, else cwd)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	siteRoot = resolveSiteRoot()
	c, err := cfgpkg.Load(cfgFile, siteRoot)
	if err != nil {
		// Non-fatal: init and config set can still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	logger = logging.New(level, os.Stderr)
	logger.Debug("configuration loaded",
		zap.String("site_root", siteRoot),
		zap.String("config_file", cfg.Path()),
		zap.String("content_dir", cfg.ContentDir),
	)
}

func resolveSiteRoot() string {
	if rootDirFlag != "" {
		return rootDirFlag
	}
	if dir, err := utils.FindSiteRoot("", cfgpkg.FileName); err == nil {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// openSite loads the content collection of the resolved site.
func openSite() (*site.Site, error) {
	if cfg == nil {
		return nil, errors.New("no configuration loaded")
	}
	return site.Load(cfg.ResolveContentDir(siteRoot), logger)
}

// scanSite is openSite for check: undecodable files are reported, not fatal.
func scanSite() (*site.Site, error) {
	if cfg == nil {
		return nil, errors.New("no configuration loaded")
	}
	return site.Scan(cfg.ResolveContentDir(siteRoot), logger)
}

// resolveDocPath turns user input such as "My Post" or "notes/idea.md" into a
// content relative file path. Bare names land in section; a missing or
// unsupported extension gets the configured one. With slugify set, every
// segment is normalized.
func resolveDocPath(arg, section string, slugify bool) string {
	p := content.NormalizePath(arg)
	ext := path.Ext(p)
	if parser.Supported(p) {
		p = strings.TrimSuffix(p, ext)
	} else {
		ext = cfg.Extension
	}
	if !strings.Contains(p, "/") && section != "" {
		p = section + "/" + p
	}
	if slugify {
		p = content.SlugifyPath(p)
	}
	return p + ext
}
