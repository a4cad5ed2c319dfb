package clientschema

import (
	"fmt"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Mapper is the type-erased view of a Schema, letting callers keep schemas for
// different settings types in one registry.
type Mapper interface {
	DefaultFields(options ...ExtractOption) ([]model.Field, error)
	ExtractValue(settings any, options ...ExtractOption) ([]model.Field, error)
	BindValue(fields []model.Field, options ...BindOption) (any, error)
}

var _ Mapper = (*Schema[struct{}])(nil)

// ExtractValue extracts fields from settings, which must be a T or *T.
func (s *Schema[T]) ExtractValue(settings any, options ...ExtractOption) ([]model.Field, error) {
	switch v := settings.(type) {
	case *T:
		return s.Extract(v, options...)
	case T:
		return s.Extract(&v, options...)
	default:
		var want *T
		return nil, fmt.Errorf("%w: expected %T, got %T", ErrInvalidArgument, want, settings)
	}
}

// BindValue binds fields into a new T and returns it as any.
func (s *Schema[T]) BindValue(fields []model.Field, options ...BindOption) (any, error) {
	out, err := s.Bind(fields, options...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
