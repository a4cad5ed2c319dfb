// Package settings declares the typed settings of the built-in indexers,
// download clients and list importers together with the descriptor tables
// that expose them as fields.
//
// Each settings type has a package-level schema (NewznabSchema,
// SabnzbdSchema, ...). Lookup returns them by kind name for callers that only
// know the kind at runtime.
package settings
