package openapi

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// ValidateValues checks values against schema. Values may hold any
// JSON-marshalable data, including model.Value.
func ValidateValues(schema *openapi3.Schema, values map[string]any) error {
	if schema == nil {
		return errors.New("openapi: schema is nil")
	}
	if values == nil {
		values = map[string]any{}
	}
	normalized, err := jsonCompatible(values)
	if err != nil {
		return fmt.Errorf("openapi: normalise values: %w", err)
	}
	if err := schema.VisitJSON(normalized, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// ValidateFields checks the values of submitted fields against schema. Fields
// without a value are validated as null.
func ValidateFields(schema *openapi3.Schema, fields []model.Field) error {
	if schema == nil {
		return errors.New("openapi: schema is nil")
	}
	values := make(map[string]any, len(fields))
	for _, field := range fields {
		if _, seen := values[field.Name]; seen {
			continue
		}
		if _, known := schema.Properties[field.Name]; !known {
			continue
		}
		if field.HasValue() {
			values[field.Name] = *field.Value
		} else {
			values[field.Name] = nil
		}
	}
	return ValidateValues(schema, values)
}
