// Package prompt fills field values interactively in a terminal.
package prompt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Collector asks for one value per field.
type Collector struct {
	driver   Driver
	advanced bool
	logger   *zap.Logger
}

// New constructs a Collector. The survey driver is used unless WithDriver is
// given.
func New(options ...Option) *Collector {
	c := &Collector{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver()
	}
	return c
}

// Collect prompts for fields in order and returns a copy holding the answers.
// Hidden, action and captcha fields are never prompted; advanced fields only
// when enabled.
func (c *Collector) Collect(ctx context.Context, fields []model.Field) ([]model.Field, error) {
	out := append([]model.Field(nil), fields...)
	announcedAdvanced := false
	for i, field := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if skip, reason := c.skip(field); skip {
			c.logger.Debug("field not prompted", zap.String("field", field.Name), zap.String("reason", reason))
			continue
		}
		if field.Advanced && !announcedAdvanced {
			if err := c.driver.Info(ctx, "Advanced settings"); err != nil {
				return nil, err
			}
			announcedAdvanced = true
		}

		value, err := c.ask(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", field.Name, err)
		}
		out[i].Value = value
	}
	return out, nil
}

func (c *Collector) skip(field model.Field) (bool, string) {
	switch field.Type {
	case model.FieldTypeHidden, model.FieldTypeAction, model.FieldTypeCaptcha:
		return true, "type"
	}
	if field.Advanced && !c.advanced {
		return true, "advanced"
	}
	return false, ""
}

func (c *Collector) ask(ctx context.Context, field model.Field) (*model.Value, error) {
	help := helpFor(field)

	switch {
	case field.Value != nil && field.Value.IsArray(), field.Type == model.FieldTypeTag:
		return c.askList(ctx, field, help)
	case field.Type == model.FieldTypeCheckbox:
		current, _ := valueOrZero(field).AsBool()
		answer, err := c.driver.Confirm(ctx, ConfirmConfig{Message: field.Label, Default: current, Help: help})
		if err != nil {
			return nil, err
		}
		v := model.BoolValue(answer)
		return &v, nil
	case field.Type == model.FieldTypeSelect && len(field.SelectOptions) > 0:
		return c.askSelect(ctx, field, help)
	case field.Type == model.FieldTypeSelect, field.Type == model.FieldTypeNumber:
		return c.askNumber(ctx, field, help)
	case field.Type == model.FieldTypePassword:
		answer, err := c.driver.Password(ctx, InputConfig{Message: field.Label, Help: help})
		if err != nil {
			return nil, err
		}
		if answer == "" && field.HasValue() {
			return field.Value, nil
		}
		v := model.StringValue(answer)
		return &v, nil
	default:
		answer, err := c.driver.Input(ctx, InputConfig{Message: field.Label, Default: currentText(field), Help: help})
		if err != nil {
			return nil, err
		}
		v := model.StringValue(answer)
		return &v, nil
	}
}

func (c *Collector) askSelect(ctx context.Context, field model.Field, help string) (*model.Value, error) {
	names := make([]string, len(field.SelectOptions))
	defaultIndex := 0
	current := currentText(field)
	for i, option := range field.SelectOptions {
		names[i] = option.Name
		if strconv.Itoa(option.Value) == current {
			defaultIndex = i
		}
	}
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:      field.Label,
		Options:      names,
		DefaultIndex: defaultIndex,
		Help:         help,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(field.SelectOptions) {
		return nil, ErrNoSelection
	}
	v := model.IntValue(int64(field.SelectOptions[idx].Value))
	return &v, nil
}

func (c *Collector) askNumber(ctx context.Context, field model.Field, help string) (*model.Value, error) {
	answer, err := c.driver.Input(ctx, InputConfig{
		Message:   field.Label,
		Default:   currentText(field),
		Help:      help,
		Validator: validateNumber,
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(answer) == "" {
		return nil, nil
	}
	v, err := model.NumberValue(answer)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Collector) askList(ctx context.Context, field model.Field, help string) (*model.Value, error) {
	var current string
	if field.Value != nil && field.Value.IsArray() {
		items := field.Value.Items()
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.Text()
		}
		current = strings.Join(parts, ",")
	} else {
		current = currentText(field)
	}
	if help == "" {
		help = "Comma separated values"
	}
	answer, err := c.driver.Input(ctx, InputConfig{Message: field.Label, Default: current, Help: help})
	if err != nil {
		return nil, err
	}
	v := model.StringValue(answer)
	return &v, nil
}

func validateNumber(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if _, err := model.NumberValue(trimmed); err != nil {
		return fmt.Errorf("%q is not a number", text)
	}
	return nil
}

func valueOrZero(field model.Field) model.Value {
	if field.Value == nil {
		return model.Value{}
	}
	return *field.Value
}

func currentText(field model.Field) string {
	if !field.HasValue() {
		return ""
	}
	return field.Value.Text()
}

func helpFor(field model.Field) string {
	switch {
	case field.HelpText != "" && field.HelpLink != "":
		return field.HelpText + " (" + field.HelpLink + ")"
	case field.HelpLink != "":
		return field.HelpLink
	default:
		return field.HelpText
	}
}
