package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/host"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/widget"
)

// Menu entries offered by Run.
const (
	ActionAdd      = "Add field"
	ActionAuthor   = "Build field"
	ActionFill     = "Fill field"
	ActionReview   = "Review field"
	ActionRemove   = "Remove field"
	ActionValidate = "Validate"
	ActionReset    = "Reset form"
	ActionShow     = "Show documents"
	ActionQuit     = "Quit"

	// ActionDone leaves the control menu of Drive.
	ActionDone = "Done"
)

// Session drives a host from the terminal: a top level menu over the host
// transitions and a control loop over the presentation of one field.
type Session struct {
	host   *host.Host
	driver PromptDriver
	out    io.Writer
	format schema.Format
	theme  Theme
	logger *slog.Logger
}

// New builds a session over h. The survey driver and stdout are used unless
// overridden.
func New(h *host.Host, options ...Option) (*Session, error) {
	if h == nil {
		return nil, ErrHostRequired
	}
	s := &Session{
		host:   h,
		out:    os.Stdout,
		format: schema.FormatYAML,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(s.out)
	}
	return s, nil
}

// Run shows the top level menu until the user quits. Quitting and aborting
// both return nil; other errors end the session.
func (s *Session) Run(ctx context.Context) error {
	actions := []string{
		ActionAdd, ActionAuthor, ActionFill, ActionReview, ActionRemove,
		ActionValidate, ActionReset, ActionShow, ActionQuit,
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.prompt(s.host.Snapshot().Schema.Title()),
			Options:      actions,
			DefaultIndex: -1,
		})
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			return err
		}
		if idx < 0 || idx >= len(actions) {
			s.info(ctx, "Invalid selection")
			continue
		}
		action := actions[idx]
		if action == ActionQuit {
			return nil
		}
		s.logger.Debug("session action", "action", action)
		if err := s.dispatch(ctx, action); err != nil {
			if errors.Is(err, ErrAborted) {
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.failure(ctx, err)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, action string) error {
	switch action {
	case ActionAdd:
		return s.addField(ctx)
	case ActionAuthor:
		return s.withField(ctx, func(id string) error { return s.Drive(ctx, id, field.ModeAuthor) })
	case ActionFill:
		return s.withField(ctx, func(id string) error { return s.Drive(ctx, id, field.ModeInteract) })
	case ActionReview:
		return s.withField(ctx, func(id string) error { return s.Review(ctx, id) })
	case ActionRemove:
		return s.withField(ctx, s.host.RemoveField)
	case ActionValidate:
		return s.validate(ctx)
	case ActionReset:
		confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{Message: s.prompt("Discard every field?")})
		if err != nil {
			return err
		}
		if confirmed {
			s.host.Reset()
		}
		return nil
	case ActionShow:
		return s.host.Snapshot().Export(s.out, s.format)
	default:
		return fmt.Errorf("tui: unknown action %q", action)
	}
}

func (s *Session) addField(ctx context.Context) error {
	items := s.host.Registry().Menu()
	if len(items) == 0 {
		s.info(ctx, "No field plugins registered.")
		return nil
	}
	labels := make([]string, 0, len(items))
	for _, item := range items {
		labels = append(labels, item.Label)
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: s.prompt("Field type"), Options: labels, DefaultIndex: 0})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(items) {
		s.info(ctx, "Invalid selection")
		return nil
	}
	id, err := s.host.AddField(items[idx].Type)
	if err != nil {
		return err
	}
	s.info(ctx, "Added "+id)
	return nil
}

func (s *Session) withField(ctx context.Context, fn func(id string) error) error {
	fields := s.host.Fields()
	if len(fields) == 0 {
		s.info(ctx, "No fields yet.")
		return nil
	}
	idx := 0
	if len(fields) > 1 {
		var err error
		idx, err = s.driver.Select(ctx, SelectConfig{Message: s.prompt("Field"), Options: fields, DefaultIndex: 0})
		if err != nil {
			return err
		}
	}
	if idx < 0 || idx >= len(fields) {
		s.info(ctx, "Invalid selection")
		return nil
	}
	return fn(fields[idx])
}

// Review prints the review presentation of id.
func (s *Session) Review(ctx context.Context, id string) error {
	node, err := s.host.Render(ctx, id, field.ModeReview)
	if err != nil {
		return err
	}
	return PrintTree(s.out, node)
}

// Drive renders id in mode, prints it and lets the user fire one control at
// a time. The tree is rendered again after every event so prompts always
// reflect the latest snapshot. It returns when the user picks Done or the
// presentation has no active controls.
func (s *Session) Drive(ctx context.Context, id string, mode field.Mode) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		root, err := s.host.Render(ctx, id, mode)
		if err != nil {
			return err
		}
		if err := PrintTree(s.out, root); err != nil {
			return err
		}

		controls := widget.Actionable(root)
		if len(controls) == 0 {
			return nil
		}
		labels := controlLabels(controls)
		labels = append(labels, ActionDone)

		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.prompt("Control"),
			Options:      labels,
			DefaultIndex: len(labels) - 1,
		})
		if err != nil {
			return err
		}
		if idx == len(controls) {
			return nil
		}
		if idx < 0 || idx > len(controls) {
			s.info(ctx, "Invalid selection")
			continue
		}
		if err := s.fire(ctx, root, controls[idx]); err != nil {
			if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) {
				return err
			}
			s.failure(ctx, err)
		}
	}
}

// fire prompts for the new state of node and sends the matching event
// through the tree.
func (s *Session) fire(ctx context.Context, root, node widget.Node) error {
	switch {
	case node.Kind == widget.KindSelect && node.OnChange != nil:
		if len(node.Options) == 0 {
			s.info(ctx, "No options to choose from.")
			return nil
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.prompt(labelOr(node)),
			Options:      node.Options,
			DefaultIndex: slices.Index(node.Options, node.Value),
			Help:         node.Help,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(node.Options) {
			s.info(ctx, "Invalid selection")
			return nil
		}
		return widget.Change(root, node.ID, node.Options[idx])
	case node.OnChange != nil:
		value, err := s.driver.Input(ctx, InputConfig{
			Message: s.prompt(labelOr(node)),
			Default: node.Value,
			Help:    node.Help,
		})
		if err != nil {
			return err
		}
		return widget.Change(root, node.ID, value)
	case node.OnToggle != nil:
		checked, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: s.prompt(labelOr(node)),
			Default: node.Checked,
			Help:    node.Help,
		})
		if err != nil {
			return err
		}
		return widget.Toggle(root, node.ID, checked)
	case node.OnClick != nil:
		return widget.Click(root, node.ID)
	default:
		return fmt.Errorf("%w: %q", widget.ErrNoHandler, node.ID)
	}
}

func (s *Session) validate(ctx context.Context) error {
	mapping := s.host.Validate(ctx)
	lint := s.host.Lint(ctx)
	if mapping.Empty() && len(lint.Issues) == 0 {
		s.info(ctx, "No issues.")
		return nil
	}
	for _, id := range s.host.Fields() {
		if fe := mapping.Field(id); fe != nil {
			s.info(ctx, s.theme.ErrorPrefix+id+": "+fe.Message())
		}
	}
	for _, msg := range mapping.Form {
		s.info(ctx, s.theme.ErrorPrefix+msg)
	}
	for _, issue := range lint.Issues {
		s.info(ctx, fmt.Sprintf("%s%s %s: %s", s.theme.InfoPrefix, issue.Severity, issue.Path, issue.Message))
	}
	return nil
}

func (s *Session) prompt(msg string) string {
	return s.theme.PromptPrefix + msg
}

func (s *Session) info(ctx context.Context, msg string) {
	_ = s.driver.Info(ctx, s.theme.InfoPrefix+msg)
}

func (s *Session) failure(ctx context.Context, err error) {
	s.logger.Warn("session action failed", "error", err)
	_ = s.driver.Info(ctx, s.theme.ErrorPrefix+err.Error())
}

// controlLabels labels each control; repeated labels get the node id
// appended so every entry stays selectable.
func controlLabels(controls []widget.Node) []string {
	labels := make([]string, 0, len(controls)+1)
	counts := make(map[string]int, len(controls))
	for _, node := range controls {
		label := controlLabel(node)
		counts[label]++
		labels = append(labels, label)
	}
	for idx, label := range labels {
		if counts[label] > 1 {
			labels[idx] = fmt.Sprintf("%s [%s]", label, controls[idx].ID)
		}
	}
	return labels
}

func controlLabel(node widget.Node) string {
	label := labelOr(node)
	switch node.Kind {
	case widget.KindButton:
		return label
	case widget.KindCheckbox:
		state := "off"
		if node.Checked {
			state = "on"
		}
		return fmt.Sprintf("Toggle %s (%s)", label, state)
	case widget.KindSelect:
		return fmt.Sprintf("Choose %s (%s)", label, valueOrPlaceholder(node))
	default:
		value := strings.TrimSpace(node.Value)
		if value == "" {
			return "Edit " + label
		}
		return fmt.Sprintf("Edit %s (%s)", label, value)
	}
}
