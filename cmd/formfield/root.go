package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/internal/config"
	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/uischema"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	logger  = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:           "formfield",
	Short:         "Build, fill and review forms made of pluggable fields",
	Long:          `formfield drives the field plugin host from the command line: list plugins, preview fields in the three modes as HTML, or run an interactive terminal session.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, used, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger, err = newLogger(cmd.ErrOrStderr(), cfg)
		if err != nil {
			return err
		}
		if used != "" {
			logger.Debug("config loaded", "path", used)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .formfield/config.yaml, then ~/.config/formfield/config.yaml)")

	rootCmd.AddCommand(pluginsCmd, previewCmd, sessionCmd, scenarioCmd, configCmd)
}

// newLogger builds the stderr text logger at the configured level.
func newLogger(w io.Writer, c config.Config) (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// sourceFlags are shared by commands that build a form before acting on it.
type sourceFlags struct {
	plugins []string
	bundle  string
	presets string
}

func (f *sourceFlags) register(cmd *cobra.Command, defaultPlugins []string) {
	cmd.Flags().StringSliceVarP(&f.plugins, "plugin", "p", defaultPlugins,
		"plugin types to add when no bundle is given")
	cmd.Flags().StringVarP(&f.bundle, "bundle", "b", "",
		"schema bundle ({schema, uiSchema, formData}) to load, json or yaml")
	cmd.Flags().StringVar(&f.presets, "presets", "",
		"directory of per plugin UI presets (overrides the presets config key)")
}

// buildHost creates a host from the config and either loads the bundle or
// adds one field per plugin type.
func (f *sourceFlags) buildHost(observers ...host.Observer) (*host.Host, error) {
	opts := []host.Option{
		host.WithLogger(logger),
		host.WithFormTitle(cfg.Form.Title),
	}
	for _, observer := range observers {
		opts = append(opts, host.WithObserver(observer))
	}
	h, err := formfield.NewHost(opts...)
	if err != nil {
		return nil, err
	}

	if f.bundle != "" {
		bundle, err := readBundle(f.bundle)
		if err != nil {
			return nil, err
		}
		if err := h.LoadBundle(bundle); err != nil {
			return nil, fmt.Errorf("loading bundle: %w", err)
		}
		return h, nil
	}

	presets, err := loadPresets(f.presets)
	if err != nil {
		return nil, err
	}
	for _, pluginType := range f.plugins {
		if _, err := formfield.AddField(h, presets, pluginType); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func readBundle(path string) (schema.Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return schema.Bundle{}, fmt.Errorf("reading bundle: %w", err)
	}
	doc, err := schema.NewDocument(schema.SourceFromFile(path), raw)
	if err != nil {
		return schema.Bundle{}, err
	}
	return schema.DecodeBundle(doc)
}

func loadPresets(dir string) (*uischema.Store, error) {
	if dir == "" {
		dir = cfg.Presets
	}
	if dir == "" {
		return nil, nil
	}
	store, err := uischema.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}
	logger.Debug("presets loaded", "dir", dir, "types", store.Types())
	return store, nil
}
