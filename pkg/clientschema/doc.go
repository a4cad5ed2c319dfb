// Package clientschema converts settings into the generic field list used by
// the UI layer and back again.
//
// Typed settings describe their exposed properties with a statically declared
// descriptor table built from property constructors (Int, Int64, OptionalInt,
// OptionalInt64, IntSlice, StringSlice, String, OptionalString, Bool, Float).
// The constructor picks the coercion rule applied when binding submitted
// fields, so no runtime type inspection is involved:
//
//	var NewznabSchema = clientschema.NewSchema(
//		clientschema.String("BaseURL", func(s *Newznab) *string { return &s.BaseURL },
//			clientschema.FieldMeta{Label: "URL", Type: model.FieldTypeTextbox}),
//	)
//
// Extract emits one field per descriptor, sorted by order. Bind builds a new
// instance and populates it from the fields. Integer properties parse
// leniently: unparsable text binds 0, or nil for optional integers. Integer
// lists are strict and return a FormatError for malformed tokens. Properties
// bound by direct assignment require a value of the matching kind.
//
// When a submission lacks the field for a described property, Bind returns a
// MissingFieldError unless AllowMissingFields is supplied, in which case the
// property keeps its default.
//
// FromDefinition derives fields from a normalised declarative definition. It
// shares the output shape but not the producer: declarative settings are never
// bound back into a typed value.
package clientschema
