package clientschema

import "github.com/ThiRaBrTNK/Radarr/pkg/selectoptions"

// ExtractOption configures Extract.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	resolver selectoptions.Resolver
}

// WithOptionResolver overrides the resolver used for select fields. The
// default resolves catalogs without caching.
func WithOptionResolver(resolver selectoptions.Resolver) ExtractOption {
	return func(cfg *extractConfig) {
		if resolver != nil {
			cfg.resolver = resolver
		}
	}
}

func newExtractConfig(options []ExtractOption) extractConfig {
	cfg := extractConfig{resolver: selectoptions.Static}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BindOption configures Bind.
type BindOption func(*bindConfig)

type bindConfig struct {
	allowMissing bool
}

// AllowMissingFields leaves properties without a submitted field at their
// default value instead of failing with a MissingFieldError.
func AllowMissingFields() BindOption {
	return func(cfg *bindConfig) {
		cfg.allowMissing = true
	}
}

func newBindConfig(options []BindOption) bindConfig {
	var cfg bindConfig
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
