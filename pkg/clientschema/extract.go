package clientschema

import (
	"fmt"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Extract returns one field per described property of settings, sorted by
// order with ties kept in declaration order. Unset nullable properties produce
// a field without a value. settings is never modified.
func (s *Schema[T]) Extract(settings *T, options ...ExtractOption) ([]model.Field, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: schema is nil", ErrInvalidArgument)
	}
	if settings == nil {
		return nil, fmt.Errorf("%w: settings is nil", ErrInvalidArgument)
	}
	cfg := newExtractConfig(options)

	fields := make([]model.Field, 0, len(s.props))
	for _, prop := range s.props {
		field := model.Field{
			Name:     prop.name,
			Label:    prop.meta.Label,
			HelpText: prop.meta.HelpText,
			HelpLink: prop.meta.HelpLink,
			Order:    prop.meta.Order,
			Advanced: prop.meta.Advanced,
			Type:     prop.meta.Type,
		}

		if value, ok := prop.get(settings); ok {
			field.Value = &value
		}

		if prop.meta.Type == model.FieldTypeSelect {
			selectOpts, err := cfg.resolver.Resolve(prop.meta.Options)
			if err != nil {
				return nil, fmt.Errorf("clientschema: field %q: %w", prop.name, err)
			}
			field.SelectOptions = selectOpts
		}

		fields = append(fields, field)
	}

	model.SortFields(fields)
	return fields, nil
}

// DefaultFields extracts the fields of a freshly constructed instance.
func (s *Schema[T]) DefaultFields(options ...ExtractOption) ([]model.Field, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: schema is nil", ErrInvalidArgument)
	}
	settings := s.New()
	return s.Extract(&settings, options...)
}
