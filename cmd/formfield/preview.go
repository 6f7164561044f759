package main

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield"
	vanilla "github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

var (
	previewSource   sourceFlags
	previewOut      string
	previewRenderer string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render every field in the author, interact and review modes",
	Long:  `Adds the requested fields (or loads a bundle) and renders the three modes side by side, followed by the schema, UI schema and form data documents.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := previewSource.buildHost()
		if err != nil {
			return err
		}

		renderers, err := formfield.NewRenderers(cfg.OutputFormat(), themeOption())
		if err != nil {
			return err
		}
		if previewRenderer != "" {
			if err := renderers.SetDefault(previewRenderer); err != nil {
				return fmt.Errorf("%w (available: %v)", err, renderers.List())
			}
		}
		renderer, err := renderers.Get("")
		if err != nil {
			return err
		}

		page, err := renderer.RenderPage(cmd.Context(), h)
		if err != nil {
			return err
		}

		if previewOut == "" {
			_, err := cmd.OutOrStdout().Write(page)
			return err
		}
		if err := os.WriteFile(previewOut, page, 0o644); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		logger.Info("preview written", "path", previewOut, "renderer", renderer.Name(), "fields", len(h.Fields()))
		return nil
	},
}

func init() {
	previewSource.register(previewCmd, []string{"select"})
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "output file (stdout if empty)")
	previewCmd.Flags().StringVarP(&previewRenderer, "renderer", "r", "", "page renderer: vanilla (default) or text")
}

// themeOption turns the theme config section into a single-manifest
// selector.
func themeOption() vanilla.Option {
	if cfg.Theme.Name == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name:    cfg.Theme.Name,
		Version: version,
		Tokens:  cfg.Theme.Tokens,
	}
	variant := ""
	if cfg.Theme.Variant != "" {
		manifest.Variants = map[string]theme.Variant{cfg.Theme.Variant: {}}
		variant = cfg.Theme.Variant
	}
	return vanilla.WithThemeSelector(vanilla.NewStaticSelector(manifest), cfg.Theme.Name, variant)
}
