package clientschema

import (
	"fmt"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Bind constructs a new T and populates every described property from the
// field with the same name. Properties outside the descriptor table keep the
// value set by the default constructor.
func (s *Schema[T]) Bind(fields []model.Field, options ...BindOption) (T, error) {
	var zero T
	if s == nil {
		return zero, fmt.Errorf("%w: schema is nil", ErrInvalidArgument)
	}
	cfg := newBindConfig(options)

	target := s.New()
	for _, prop := range s.props {
		field, ok := model.FindField(fields, prop.name)
		if !ok {
			if cfg.allowMissing {
				continue
			}
			return zero, &MissingFieldError{Name: prop.name}
		}
		if err := prop.set(&target, field.Value); err != nil {
			return zero, err
		}
	}
	return target, nil
}
