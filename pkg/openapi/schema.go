package openapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Extension keys attached to every property schema.
const (
	ExtensionOrder     = "x-order"
	ExtensionAdvanced  = "x-advanced"
	ExtensionFieldType = "x-field-type"
	ExtensionEnumNames = "x-enum-names"
)

// SchemaFromFields returns an object schema with one property per field.
// Action and captcha fields carry no value and are skipped.
func SchemaFromFields(fields []model.Field) (*openapi3.Schema, error) {
	schema := openapi3.NewObjectSchema()
	for _, field := range fields {
		if field.Type == model.FieldTypeAction || field.Type == model.FieldTypeCaptcha {
			continue
		}
		prop, err := propertySchema(field)
		if err != nil {
			return nil, fmt.Errorf("openapi: field %q: %w", field.Name, err)
		}
		schema.WithProperty(field.Name, prop)
	}
	return schema, nil
}

func propertySchema(field model.Field) (*openapi3.Schema, error) {
	var prop *openapi3.Schema
	switch {
	case field.Value != nil && field.Value.IsArray():
		prop = openapi3.NewArraySchema().WithItems(itemSchema(field.Value.Items()))
	case field.Type == model.FieldTypeTag:
		prop = openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	case field.Type == model.FieldTypeNumber:
		prop = openapi3.NewFloat64Schema()
	case field.Type == model.FieldTypeCheckbox:
		prop = openapi3.NewBoolSchema()
	case field.Type == model.FieldTypeSelect:
		prop = openapi3.NewIntegerSchema()
		if len(field.SelectOptions) > 0 {
			values := make([]any, 0, len(field.SelectOptions))
			names := make([]any, 0, len(field.SelectOptions))
			for _, option := range field.SelectOptions {
				values = append(values, float64(option.Value))
				names = append(names, option.Name)
			}
			prop.WithEnum(values...)
			prop.Extensions = map[string]any{ExtensionEnumNames: names}
		}
	case field.Type == model.FieldTypePassword:
		prop = openapi3.NewStringSchema()
		prop.Format = "password"
	default:
		prop = openapi3.NewStringSchema()
	}

	prop.Title = field.Label
	prop.Description = strings.TrimSpace(strings.Join(nonEmpty(field.HelpText, field.HelpLink), "\n\n"))
	if prop.Extensions == nil {
		prop.Extensions = map[string]any{}
	}
	prop.Extensions[ExtensionOrder] = field.Order
	prop.Extensions[ExtensionAdvanced] = field.Advanced
	prop.Extensions[ExtensionFieldType] = string(field.Type)

	if field.HasValue() {
		def, err := jsonCompatible(field.Value)
		if err != nil {
			return nil, err
		}
		prop.Default = def
	} else {
		prop.Nullable = true
	}
	return prop, nil
}

// itemSchema picks integer items when every element is an integral number,
// string items when every element is a string, and an untyped schema
// otherwise.
func itemSchema(items []model.Value) *openapi3.Schema {
	if len(items) == 0 {
		return &openapi3.Schema{}
	}
	allStrings, allIntegers := true, true
	for _, item := range items {
		if item.Kind() != model.KindString {
			allStrings = false
		}
		if item.Kind() != model.KindNumber || strings.ContainsAny(item.Text(), ".eE") {
			allIntegers = false
		}
	}
	switch {
	case allIntegers:
		return openapi3.NewIntegerSchema()
	case allStrings:
		return openapi3.NewStringSchema()
	default:
		return &openapi3.Schema{}
	}
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// jsonCompatible converts v into the shapes encoding/json produces, which is
// what VisitJSON expects.
func jsonCompatible(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
