package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the per-site configuration file kept at the site root.
const FileName = "sitedocs.yaml"

// Global configuration structure.
type Global struct {
	// ContentDir is the content root, relative to the site root unless absolute.
	ContentDir string `mapstructure:"content_dir" yaml:"content_dir"`
	// DefaultSection is prefixed to bare names given to new and add.
	DefaultSection string `mapstructure:"default_section" yaml:"default_section"`
	// Extension is used for documents created by new.
	Extension  string `mapstructure:"extension" yaml:"extension"`
	ListDrafts bool   `mapstructure:"list_drafts" yaml:"list_drafts"`
	NewDraft   bool   `mapstructure:"new_draft" yaml:"new_draft"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`

	// Not serialized: where the configuration was read from, if anywhere.
	path string `yaml:"-"`
}

// Path returns the file the configuration was loaded from, or "".
func (c *Global) Path() string { return c.path }

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to the file it was loaded from, else ~/.sitedocs/config.yaml,
// creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		path = c.path
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".sitedocs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	c.path = path
	return nil
}

// Defaults returns the configuration used when no file or env sets a key.
func Defaults() *Global {
	return &Global{
		ContentDir:     "content",
		DefaultSection: "posts",
		Extension:      ".md",
		ListDrafts:     false,
		NewDraft:       true,
		LogLevel:       "warn",
	}
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
// Without cfgFile, siteRoot/sitedocs.yaml is read, then ~/.sitedocs/config.yaml.
func Load(cfgFile, siteRoot string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SITEDOCS")
	v.AutomaticEnv()

	// Defaults
	d := Defaults()
	v.SetDefault("content_dir", d.ContentDir)
	v.SetDefault("default_section", d.DefaultSection)
	v.SetDefault("extension", d.Extension)
	v.SetDefault("list_drafts", d.ListDrafts)
	v.SetDefault("new_draft", d.NewDraft)
	v.SetDefault("log_level", d.LogLevel)

	// Config file
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case siteRoot != "" && fileExists(filepath.Join(siteRoot, FileName)):
		v.SetConfigFile(filepath.Join(siteRoot, FileName))
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".sitedocs"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.path = v.ConfigFileUsed()
	if c.Extension != "" && c.Extension[0] != '.' {
		c.Extension = "." + c.Extension
	}
	return &c, nil
}

// ResolveContentDir returns the absolute content directory for siteRoot.
func (c *Global) ResolveContentDir(siteRoot string) string {
	if filepath.IsAbs(c.ContentDir) {
		return filepath.Clean(c.ContentDir)
	}
	return filepath.Join(siteRoot, c.ContentDir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
