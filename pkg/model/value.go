package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind enumerates the variants a Value can hold.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// ErrInvalidNumber is returned when a number literal is malformed.
var ErrInvalidNumber = errors.New("model: invalid number literal")

// Value is the generic payload of a Field. The zero Value is invalid and
// marshals as JSON null.
type Value struct {
	kind  Kind
	text  string
	flag  bool
	items []Value
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// IntValue wraps an integer.
func IntValue(i int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

// FloatValue wraps a floating point number. NaN and infinities have no JSON
// form and yield the zero (invalid) Value.
func FloatValue(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// NumberValue wraps a decimal number literal, validating it against the JSON
// number grammar.
func NumberValue(text string) (Value, error) {
	trimmed := strings.TrimSpace(text)
	if !isNumberLiteral(trimmed) {
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return Value{kind: KindNumber, text: trimmed}, nil
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// ArrayValue wraps a list of primitive values. It panics on nested arrays or
// invalid items.
func ArrayValue(items ...Value) Value {
	out := make([]Value, len(items))
	for idx, item := range items {
		if item.kind == KindArray || item.kind == KindInvalid {
			panic(fmt.Sprintf("model: array item %d must be a primitive value, got %s", idx, item.kind))
		}
		out[idx] = item
	}
	return Value{kind: KindArray, items: out}
}

// IntsValue wraps a list of integers.
func IntsValue(values []int) Value {
	items := make([]Value, len(values))
	for idx, v := range values {
		items[idx] = IntValue(int64(v))
	}
	return Value{kind: KindArray, items: items}
}

// StringsValue wraps a list of strings.
func StringsValue(values []string) Value {
	items := make([]Value, len(values))
	for idx, v := range values {
		items[idx] = StringValue(v)
	}
	return Value{kind: KindArray, items: items}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsArray reports whether v holds a list.
func (v Value) IsArray() bool {
	return v.kind == KindArray
}

// Items returns a copy of the list elements. It is nil for non-array values.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return append([]Value(nil), v.items...)
}

// AsString returns the string payload when v holds a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// AsBool returns the boolean payload when v holds a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// AsFloat returns the numeric payload when v holds a number.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Text renders v as text: strings verbatim, numbers in their canonical
// literal form, booleans as "true"/"false" and arrays as JSON.
func (v Value) Text() string {
	switch v.kind {
	case KindString, KindNumber:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindArray:
		data, err := v.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

// Interface converts v into plain Go values: string, int64 or float64, bool,
// or []any. The zero Value converts to nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.text
	case KindNumber:
		if i, err := strconv.ParseInt(v.text, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(v.text, 64)
		return f
	case KindBool:
		return v.flag
	case KindArray:
		out := make([]any, len(v.items))
		for idx, item := range v.items {
			out[idx] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString, KindNumber:
		return v.text == other.text
	case KindBool:
		return v.flag == other.flag
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for idx := range v.items {
			if !v.items[idx].Equal(other.items[idx]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// FromAny converts common Go values into a Value. Supported inputs are
// strings, booleans, integer and float kinds, json.Number, and slices of
// those.
func FromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case Value:
		return t, nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case int:
		return IntValue(int64(t)), nil
	case int32:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case float32:
		return FloatValue(float64(t)), nil
	case float64:
		return FloatValue(t), nil
	case json.Number:
		return NumberValue(t.String())
	case []int:
		return IntsValue(t), nil
	case []string:
		return StringsValue(t), nil
	case []any:
		items := make([]Value, 0, len(t))
		for idx, item := range t {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("model: item %d: %w", idx, err)
			}
			if converted.kind == KindArray {
				return Value{}, fmt.Errorf("model: item %d: nested arrays are not supported", idx)
			}
			items = append(items, converted)
		}
		return Value{kind: KindArray, items: items}, nil
	default:
		return Value{}, fmt.Errorf("model: unsupported value type %T", raw)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.text)
	case KindNumber:
		return []byte(v.text), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.flag)), nil
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for idx, item := range v.items {
			if idx > 0 {
				buf.WriteByte(',')
			}
			data, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. JSON null leaves v untouched;
// objects and nested arrays are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("model: decode value: %w", err)
	}
	parsed, err := fromDecoded(raw, true)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func fromDecoded(raw any, allowArray bool) (Value, error) {
	switch t := raw.(type) {
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return Value{kind: KindNumber, text: t.String()}, nil
	case []any:
		if !allowArray {
			return Value{}, errors.New("model: nested arrays are not supported")
		}
		items := make([]Value, 0, len(t))
		for _, item := range t {
			converted, err := fromDecoded(item, false)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return Value{kind: KindArray, items: items}, nil
	case nil:
		return Value{}, errors.New("model: null is not allowed inside arrays")
	default:
		return Value{}, fmt.Errorf("model: unsupported JSON value %T", raw)
	}
}

func isNumberLiteral(text string) bool {
	if text == "" {
		return false
	}
	if c := text[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == '-', r == '+', r == '.', r == 'e', r == 'E':
		default:
			return false
		}
	}
	_, err := strconv.ParseFloat(text, 64)
	return err == nil
}
