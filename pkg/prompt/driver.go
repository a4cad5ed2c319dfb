package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes a free-text or masked question.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig describes a yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig describes a single choice among Options. Select returns the
// chosen index.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Driver is the terminal seen by a Collector.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Password(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

// surveyDriver asks through survey. Survey has no cancellation, so the
// context is only checked before each question.
type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver returns a Driver backed by survey on stdio, or on the
// process streams when stdio is omitted.
func NewSurveyDriver(stdio ...terminal.Stdio) Driver {
	if len(stdio) == 0 {
		return &surveyDriver{out: os.Stdout}
	}
	s := stdio[0]
	return &surveyDriver{out: s.Out, opts: []survey.AskOpt{survey.WithStdio(s.In, s.Out, s.Err)}}
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return askText(ctx, d, &survey.Input{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, cfg.Validator)
}

func (d *surveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	return askText(ctx, d, &survey.Password{Message: cfg.Message, Help: cfg.Help}, cfg.Validator)
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var answer bool
	err := d.ask(ctx, &survey.Confirm{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}, &answer)
	return answer, err
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	q := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help, PageSize: cfg.PageSize}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		q.Default = cfg.DefaultIndex
	}
	// survey writes the chosen index into an int target.
	index := -1
	if err := d.ask(ctx, q, &index); err != nil {
		return -1, err
	}
	return index, nil
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(d.out, "\n%s\n", msg)
	return err
}

func askText(ctx context.Context, d *surveyDriver, q survey.Prompt, validate func(string) error) (string, error) {
	var extra []survey.AskOpt
	if validate != nil {
		extra = append(extra, survey.WithValidator(func(answer any) error {
			text, ok := answer.(string)
			if !ok {
				return fmt.Errorf("prompt: unexpected answer type %T", answer)
			}
			return validate(text)
		}))
	}
	var answer string
	err := d.ask(ctx, q, &answer, extra...)
	return answer, err
}

func (d *surveyDriver) ask(ctx context.Context, q survey.Prompt, target any, extra ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := make([]survey.AskOpt, 0, len(d.opts)+len(extra))
	opts = append(append(opts, d.opts...), extra...)
	err := survey.AskOne(q, target, opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
