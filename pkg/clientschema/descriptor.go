package clientschema

import (
	"fmt"
	"strings"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
	"github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"
)

// FieldMeta is the compiled metadata attached to one settings property.
// Label, Order and Type are required; Options is only consulted for select
// fields.
type FieldMeta struct {
	Label    string
	HelpText string
	HelpLink string
	Order    int
	Advanced bool
	Type     model.FieldType
	Options  selectoptions.Catalog
}

// Property describes how one field of T is exposed and bound. Build values
// with the typed constructors in this package.
type Property[T any] struct {
	name string
	meta FieldMeta
	get  func(*T) (model.Value, bool)
	set  func(*T, *model.Value) error
}

// Name returns the field name, which is also the settings property name.
func (p Property[T]) Name() string {
	return p.name
}

// Meta returns the compiled metadata.
func (p Property[T]) Meta() FieldMeta {
	return p.meta
}

// Schema is the descriptor table for settings type T.
type Schema[T any] struct {
	props    []Property[T]
	defaults func() T
}

// NewSchema builds a descriptor table from properties in declaration order.
// It panics on blank or duplicate names, a missing label or type, or a select
// field without a catalog, since those are programming mistakes.
func NewSchema[T any](props ...Property[T]) *Schema[T] {
	seen := make(map[string]struct{}, len(props))
	for idx, prop := range props {
		if strings.TrimSpace(prop.name) == "" {
			panic(fmt.Sprintf("clientschema: property %d has no name", idx))
		}
		if _, dup := seen[prop.name]; dup {
			panic(fmt.Sprintf("clientschema: duplicate property %q", prop.name))
		}
		seen[prop.name] = struct{}{}
		if strings.TrimSpace(prop.meta.Label) == "" {
			panic(fmt.Sprintf("clientschema: property %q has no label", prop.name))
		}
		if prop.meta.Type == "" {
			panic(fmt.Sprintf("clientschema: property %q has no field type", prop.name))
		}
		if prop.meta.Type == model.FieldTypeSelect && prop.meta.Options == nil {
			panic(fmt.Sprintf("clientschema: select property %q has no option catalog", prop.name))
		}
		if prop.get == nil || prop.set == nil {
			panic(fmt.Sprintf("clientschema: property %q was not built by a constructor", prop.name))
		}
	}
	return &Schema[T]{props: append([]Property[T](nil), props...)}
}

// WithDefaults sets the constructor used by Bind. Without it Bind starts from
// the zero value of T.
func (s *Schema[T]) WithDefaults(fn func() T) *Schema[T] {
	s.defaults = fn
	return s
}

// Properties returns the descriptors in declaration order.
func (s *Schema[T]) Properties() []Property[T] {
	if s == nil {
		return nil
	}
	return append([]Property[T](nil), s.props...)
}

// New returns a fresh instance from the default constructor.
func (s *Schema[T]) New() T {
	if s != nil && s.defaults != nil {
		return s.defaults()
	}
	var zero T
	return zero
}

// Int exposes an int property holding a 32-bit value. Binding parses the
// value's text and falls back to 0.
func Int[T any](name string, ref func(*T) *int, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			return model.IntValue(int64(*ref(s))), true
		},
		set: func(s *T, v *model.Value) error {
			n, _ := parseInteger(v, 32)
			*ref(s) = int(n)
			return nil
		},
	}
}

// Int64 exposes an int64 property. Binding falls back to 0.
func Int64[T any](name string, ref func(*T) *int64, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			return model.IntValue(*ref(s)), true
		},
		set: func(s *T, v *model.Value) error {
			n, _ := parseInteger(v, 64)
			*ref(s) = n
			return nil
		},
	}
}

// OptionalInt exposes a nullable 32-bit integer. Binding falls back to nil.
func OptionalInt[T any](name string, ref func(*T) **int, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			p := *ref(s)
			if p == nil {
				return model.Value{}, false
			}
			return model.IntValue(int64(*p)), true
		},
		set: func(s *T, v *model.Value) error {
			n, ok := parseInteger(v, 32)
			if !ok {
				*ref(s) = nil
				return nil
			}
			value := int(n)
			*ref(s) = &value
			return nil
		},
	}
}

// OptionalInt64 exposes a nullable int64. Binding falls back to nil.
func OptionalInt64[T any](name string, ref func(*T) **int64, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			p := *ref(s)
			if p == nil {
				return model.Value{}, false
			}
			return model.IntValue(*p), true
		},
		set: func(s *T, v *model.Value) error {
			n, ok := parseInteger(v, 64)
			if !ok {
				*ref(s) = nil
				return nil
			}
			*ref(s) = &n
			return nil
		},
	}
}

// IntSlice exposes a list of integers. Array values are converted element by
// element; text values are split on commas with empty segments dropped. A
// malformed element is a FormatError.
func IntSlice[T any](name string, ref func(*T) *[]int, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			list := *ref(s)
			if list == nil {
				return model.Value{}, false
			}
			return model.IntsValue(list), true
		},
		set: func(s *T, v *model.Value) error {
			list, err := intList(name, v)
			if err != nil {
				return err
			}
			*ref(s) = list
			return nil
		},
	}
}

// StringSlice exposes a list of strings with the same array/text handling as
// IntSlice, minus the parsing.
func StringSlice[T any](name string, ref func(*T) *[]string, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			list := *ref(s)
			if list == nil {
				return model.Value{}, false
			}
			return model.StringsValue(list), true
		},
		set: func(s *T, v *model.Value) error {
			*ref(s) = stringList(v)
			return nil
		},
	}
}

// String exposes a string property. Binding requires a string value.
func String[T any](name string, ref func(*T) *string, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			return model.StringValue(*ref(s)), true
		},
		set: func(s *T, v *model.Value) error {
			if v == nil {
				*ref(s) = ""
				return nil
			}
			str, ok := v.AsString()
			if !ok {
				return &TypeMismatchError{Field: name, Want: model.KindString, Got: v.Kind()}
			}
			*ref(s) = str
			return nil
		},
	}
}

// OptionalString exposes a nullable string. Binding requires a string value
// or no value at all.
func OptionalString[T any](name string, ref func(*T) **string, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			p := *ref(s)
			if p == nil {
				return model.Value{}, false
			}
			return model.StringValue(*p), true
		},
		set: func(s *T, v *model.Value) error {
			if v == nil {
				*ref(s) = nil
				return nil
			}
			str, ok := v.AsString()
			if !ok {
				return &TypeMismatchError{Field: name, Want: model.KindString, Got: v.Kind()}
			}
			*ref(s) = &str
			return nil
		},
	}
}

// Bool exposes a boolean property. Binding requires a bool value.
func Bool[T any](name string, ref func(*T) *bool, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			return model.BoolValue(*ref(s)), true
		},
		set: func(s *T, v *model.Value) error {
			if v == nil {
				*ref(s) = false
				return nil
			}
			b, ok := v.AsBool()
			if !ok {
				return &TypeMismatchError{Field: name, Want: model.KindBool, Got: v.Kind()}
			}
			*ref(s) = b
			return nil
		},
	}
}

// Float exposes a float64 property. Binding requires a number value. NaN and
// infinities extract as a field without a value.
func Float[T any](name string, ref func(*T) *float64, meta FieldMeta) Property[T] {
	return Property[T]{
		name: name,
		meta: meta,
		get: func(s *T) (model.Value, bool) {
			v := model.FloatValue(*ref(s))
			return v, v.Kind() == model.KindNumber
		},
		set: func(s *T, v *model.Value) error {
			if v == nil {
				*ref(s) = 0
				return nil
			}
			f, ok := v.AsFloat()
			if !ok {
				return &TypeMismatchError{Field: name, Want: model.KindNumber, Got: v.Kind()}
			}
			*ref(s) = f
			return nil
		},
	}
}
