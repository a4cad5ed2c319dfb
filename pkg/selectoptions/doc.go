// Package selectoptions resolves select-field catalogs into ordered option
// lists. Three catalog kinds are supported:
//
//   - UserData catalogs (for example quality profiles) hold records owned by the
//     user. Resolution returns an empty list and leaves population to the caller.
//   - RankedCatalog values expose a static ladder of named entries with stable
//     numeric ranks.
//   - EnumCatalog values expose the symbolic names and integer values of a Go
//     enumeration type. Use Enum to build one from a fmt.Stringer integer type.
//
// Every resolved list is sorted ascending by value. Resolution is
// deterministic, so the Registry caches results per catalog name.
package selectoptions
