package model

import "sort"

// FieldType is the rendering hint attached to a field. It is a UI concern and
// says nothing about how the underlying setting is stored.
type FieldType string

const (
	FieldTypeTextbox  FieldType = "textbox"
	FieldTypeNumber   FieldType = "number"
	FieldTypePassword FieldType = "password"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypePath     FieldType = "path"
	FieldTypeFilePath FieldType = "filepath"
	FieldTypeHidden   FieldType = "hidden"
	FieldTypeTag      FieldType = "tag"
	FieldTypeAction   FieldType = "action"
	FieldTypeURL      FieldType = "url"
	FieldTypeCaptcha  FieldType = "captcha"
)

// SelectOption is one entry of a select field's catalog.
type SelectOption struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Field describes one configurable setting exposed to a UI. Name must match the
// owning setting identifier exactly so submissions can be bound back.
type Field struct {
	Name          string         `json:"name"`
	Label         string         `json:"label"`
	HelpText      string         `json:"helpText"`
	HelpLink      string         `json:"helpLink"`
	Order         int            `json:"order"`
	Advanced      bool           `json:"advanced"`
	Type          FieldType      `json:"type"`
	Value         *Value         `json:"value,omitempty"`
	SelectOptions []SelectOption `json:"selectOptions,omitempty"`
}

// HasValue reports whether the field carries a value.
func (f Field) HasValue() bool {
	return f.Value != nil && f.Value.Kind() != KindInvalid
}

// WithValue returns a copy of f holding v.
func (f Field) WithValue(v Value) Field {
	f.Value = &v
	return f
}

// SortFields orders fields ascending by Order, keeping declaration order for
// ties. The slice is sorted in place.
func SortFields(fields []Field) {
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})
}

// FindField returns the first field whose name equals name. The comparison is
// case-sensitive.
func FindField(fields []Field, name string) (Field, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
