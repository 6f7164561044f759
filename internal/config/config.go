// Package config provides the CLI configuration types, defaults and loading.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// Config holds every setting the CLI reads.
type Config struct {
	Log     LogConfig    `mapstructure:"log" yaml:"log"`
	Output  OutputConfig `mapstructure:"output" yaml:"output"`
	Form    FormConfig   `mapstructure:"form" yaml:"form"`
	Theme   ThemeConfig  `mapstructure:"theme" yaml:"theme"`
	Presets string       `mapstructure:"presets" yaml:"presets,omitempty"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn or error
}

// OutputConfig controls document serialisation.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // json or yaml
}

// FormConfig seeds new forms.
type FormConfig struct {
	Title string `mapstructure:"title" yaml:"title"`
}

// ThemeConfig feeds the HTML preview theme. Tokens become CSS variables.
type ThemeConfig struct {
	Name    string            `mapstructure:"name" yaml:"name"`
	Variant string            `mapstructure:"variant" yaml:"variant,omitempty"`
	Tokens  map[string]string `mapstructure:"tokens" yaml:"tokens,omitempty"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: string(schema.FormatJSON)},
		Form:   FormConfig{Title: schema.DefaultFormTitle},
		Theme: ThemeConfig{
			Name: "default",
			Tokens: map[string]string{
				"brand":   "#2563eb",
				"surface": "#ffffff",
				"text":    "#1f2933",
			},
		},
	}
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("form.title", defaults.Form.Title)
	v.SetDefault("theme.name", defaults.Theme.Name)
	v.SetDefault("theme.variant", defaults.Theme.Variant)
	v.SetDefault("theme.tokens", defaults.Theme.Tokens)
	v.SetDefault("presets", defaults.Presets)
}

// Load reads the configuration into a fresh viper instance.
//
// Lookup order:
//  1. path, when not empty
//  2. .formfield/config.yaml (current directory)
//  3. ~/.config/formfield/config.yaml (user config)
//
// A missing file is not an error; defaults apply. The returned string is
// the file used, if any.
func Load(path string) (Config, string, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("FORMFIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(filepath.Join(".formfield", "config.yaml")); err == nil {
		v.SetConfigFile(filepath.Join(".formfield", "config.yaml"))
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "formfield"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, v.ConfigFileUsed(), nil
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, ok := schema.ParseFormat(c.Output.Format); !ok {
		return fmt.Errorf("output.format: unsupported format %q", c.Output.Format)
	}
	return nil
}

// LogLevel maps log.level onto slog levels.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// OutputFormat returns the parsed output.format, defaulting to JSON.
func (c Config) OutputFormat() schema.Format {
	format, ok := schema.ParseFormat(c.Output.Format)
	if !ok {
		return schema.FormatJSON
	}
	return format
}

// DefaultConfigTemplate returns the default config as commented YAML.
func DefaultConfigTemplate() (string, error) {
	payload, err := yaml.Marshal(Defaults())
	if err != nil {
		return "", fmt.Errorf("encoding default config: %w", err)
	}
	return "# formfield configuration\n" +
		"# log.level: debug | info | warn | error\n" +
		"# output.format: json | yaml\n" +
		"# presets: directory of per plugin UI presets (json or yaml)\n" +
		string(payload), nil
}

// WriteDefaultConfig creates a config file at configPath with the default
// settings, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	content, err := DefaultConfigTemplate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
