// Package openapi exports field lists as OpenAPI 3 schemas so settings forms
// can be documented and validated by standard tooling. It builds on
// kin-openapi.
package openapi
