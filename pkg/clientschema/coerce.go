package clientschema

import (
	"math"
	"strconv"
	"strings"

	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// parseInteger reads v's text as a signed integer of the given bit size. It
// accepts surrounding whitespace and a leading sign and reports false for
// anything else, including an absent value.
func parseInteger(v *model.Value, bits int) (int64, bool) {
	if v == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v.Text()), 10, bits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func intList(name string, v *model.Value) ([]int, error) {
	if v == nil {
		return nil, nil
	}
	if v.IsArray() {
		items := v.Items()
		out := make([]int, 0, len(items))
		for _, item := range items {
			n, err := arrayInt(name, item)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}
		return out, nil
	}

	segments := splitList(v.Text())
	out := make([]int, 0, len(segments))
	for _, segment := range segments {
		n, err := strconv.ParseInt(strings.TrimSpace(segment), 10, 32)
		if err != nil {
			return nil, &FormatError{Field: name, Token: segment, Err: err}
		}
		out = append(out, int(n))
	}
	return out, nil
}

// arrayInt converts one structured array element. Integral numbers and
// numeric strings convert; everything else is a FormatError.
func arrayInt(name string, item model.Value) (int, error) {
	text := strings.TrimSpace(item.Text())
	switch item.Kind() {
	case model.KindNumber:
		if n, err := strconv.ParseInt(text, 10, 32); err == nil {
			return int(n), nil
		}
		f, ok := item.AsFloat()
		if ok && f == math.Trunc(f) && f >= math.MinInt32 && f <= math.MaxInt32 {
			return int(f), nil
		}
		return 0, &FormatError{Field: name, Token: text}
	case model.KindString:
		n, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return 0, &FormatError{Field: name, Token: text, Err: err}
		}
		return int(n), nil
	default:
		return 0, &FormatError{Field: name, Token: text}
	}
}

func stringList(v *model.Value) []string {
	if v == nil {
		return nil
	}
	if v.IsArray() {
		items := v.Items()
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, item.Text())
		}
		return out
	}
	return splitList(v.Text())
}

// splitList splits on commas and drops empty segments. Whitespace-only
// segments are kept.
func splitList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
