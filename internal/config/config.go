// Package config resolves catdocs settings from an optional catdocs.yaml and
// command-line flags. Environment variables are never consulted.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gorewood/catdocs/internal/category"
	"github.com/gorewood/catdocs/internal/mdx"
)

// DefaultFile is the project config file read when no --config is given.
const DefaultFile = "catdocs.yaml"

// Config holds the resolved settings for one run.
type Config struct {
	Tree        string            `mapstructure:"tree"`
	Output      string            `mapstructure:"output"`
	Locale      string            `mapstructure:"locale"`
	Strict      bool              `mapstructure:"strict"`
	Intro       string            `mapstructure:"intro"`
	Frontmatter FrontmatterConfig `mapstructure:"frontmatter"`

	// File is the config file that was read, empty when none was.
	File string `mapstructure:"-"`
}

// FrontmatterConfig is used only when the output page has no front-matter yet.
type FrontmatterConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

// flagKeys are the config keys that a command flag of the same name overrides.
var flagKeys = []string{"tree", "output", "locale", "strict"}

// Load resolves the configuration. When path is empty, DefaultFile is read
// if it exists. Flags that were set on the command line take precedence over
// the file; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		for _, key := range flagKeys {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("binding --%s: %w", key, err)
				}
			}
		}
	}

	file, err := resolveFile(path)
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = file

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required paths are set and the locale parses.
func (c *Config) Validate() error {
	if c.Tree == "" {
		return errors.New("config: tree path must not be empty")
	}
	if c.Output == "" {
		return errors.New("config: output path must not be empty")
	}
	if _, err := category.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func resolveFile(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}

	_, err := os.Stat(DefaultFile)
	switch {
	case err == nil:
		return DefaultFile, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("config file %s: %w", DefaultFile, err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tree", "categories_tree.json")
	v.SetDefault("output", "categories.mdx")
	v.SetDefault("locale", category.DefaultLocale)
	v.SetDefault("strict", false)
	v.SetDefault("intro", mdx.DefaultIntro)
	v.SetDefault("frontmatter.title", mdx.DefaultTitle)
	v.SetDefault("frontmatter.description", mdx.DefaultDescription)
}
