// Package definition loads declarative indexer definitions: third-party
// documents that describe an indexer's settings, login flow and search
// requests. Documents are YAML (JSON is accepted as a subset), keyed the way
// published definitions are.
//
// Loading fetches the document from a Source, validates its structure against
// an embedded JSON Schema, decodes it (unknown keys are ignored) and
// normalises it:
//
//  1. a missing settings list becomes a username/password pair;
//  2. a missing encoding becomes UTF-8;
//  3. a login block without a method uses "form";
//  4. search paths always exist, possibly empty;
//  5. a legacy single search path is appended to the paths list, inheriting
//     the parent search inputs. The legacy path itself is kept.
//
// Every failure to read, validate or decode a document is a *ParseError.
// Loaders do not memoise; wrap one in a Cache to avoid repeated reads.
// Definitions returned by a Cache are shared and must be treated as
// immutable.
package definition
