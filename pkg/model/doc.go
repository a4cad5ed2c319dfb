// Package model defines the generic, UI-facing field list produced by the
// schema extractors and consumed by the binder. A Field carries display
// metadata (label, help, order, advanced flag, rendering type), an optional
// Value and, for select fields, an ordered list of SelectOption entries.
//
// Value is a small tagged union (string, number, bool or array of those)
// rather than an untyped interface so coercion rules can switch on its Kind
// exhaustively. Numbers keep their canonical decimal text, which means 64-bit
// identifiers survive a JSON round trip without float rounding.
package model
