package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no style prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single choice prompt. DefaultIndex is ignored
// when out of range.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// PromptDriver abstracts the terminal so session logic can be tested without
// a real terminal and callers can swap implementations.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

// surveyDriver prompts on the process terminal.
type surveyDriver struct {
	out io.Writer
}

// NewSurveyDriver returns the survey backed driver. Info messages go to out,
// or stdout when out is nil.
func NewSurveyDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out}
}

// ask runs one survey prompt, honouring cancellation before it blocks on the
// terminal. Ctrl-C surfaces as ErrAborted.
func ask(ctx context.Context, prompt survey.Prompt, answer any, opts ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := survey.AskOne(prompt, answer, opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	var opts []survey.AskOpt
	if check := cfg.Validator; check != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			value, _ := ans.(string)
			return check(value)
		}))
	}
	var answer string
	err := ask(ctx, &survey.Input{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, &answer, opts...)
	return answer, err
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var answer bool
	err := ask(ctx, &survey.Confirm{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, &answer)
	return answer, err
}

// Select answers with the chosen index, so repeated labels stay
// distinguishable.
func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(cfg.Options) == 0 {
		return -1, fmt.Errorf("tui: select %q has no options", cfg.Message)
	}
	prompt := &survey.Select{
		Message:  cfg.Message,
		Options:  cfg.Options,
		Help:     cfg.Help,
		PageSize: cfg.PageSize,
	}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.DefaultIndex
	}
	var index int
	if err := ask(ctx, prompt, &index); err != nil {
		return -1, err
	}
	return index, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}
