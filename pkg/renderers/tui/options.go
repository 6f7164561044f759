package tui

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formfield/pkg/schema"
)

// Theme captures optional prefixes the session applies when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets where trees and documents are printed.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithFormat selects the document format used by "Show documents".
func WithFormat(format schema.Format) Option {
	return func(s *Session) {
		if format != "" {
			s.format = format
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}
