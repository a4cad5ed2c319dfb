package definition

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ThiRaBrTNK/Radarr/internal/fetch"
)

// Loader reads and normalises one definition per call.
type Loader interface {
	Load(ctx context.Context, src Source) (Definition, error)
}

// LoaderOptions collects the knobs used to construct a Loader.
type LoaderOptions struct {
	FileSystem        fs.FS
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration
	Logger            *zap.Logger
	SkipValidation    bool
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem resolves SourceKindFS sources against fsys.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = fsys
	}
}

// WithHTTPClient enables URL sources using client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources with a default client bounded by
// timeout. Zero means no timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Logger = logger
	}
}

// WithoutValidation skips the structural schema check; decoding errors are
// still reported.
func WithoutValidation() LoaderOption {
	return func(opts *LoaderOptions) {
		opts.SkipValidation = true
	}
}

// NewLoaderOptions applies options over the defaults.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var cfg LoaderOptions
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

type loader struct {
	fs       fs.FS
	http     *http.Client
	timeout  time.Duration
	logger   *zap.Logger
	validate bool
}

var _ Loader = (*loader)(nil)

// NewLoader constructs a Loader. URL sources are rejected unless an HTTP
// client or the HTTP fallback is configured.
func NewLoader(options ...LoaderOption) Loader {
	cfg := NewLoaderOptions(options...)

	var httpClient *http.Client
	switch {
	case cfg.HTTPClient != nil:
		clone := *cfg.HTTPClient
		if cfg.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = cfg.RequestTimeout
		}
		httpClient = &clone
	case cfg.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &loader{
		fs:       cfg.FileSystem,
		http:     httpClient,
		timeout:  cfg.RequestTimeout,
		logger:   cfg.Logger,
		validate: !cfg.SkipValidation,
	}
}

func (l *loader) Load(ctx context.Context, src Source) (Definition, error) {
	if src == nil {
		return Definition{}, parseError("", errors.New("source is nil"))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	location := src.Location()

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case SourceKindFile:
		data, err = fetch.File(ctx, location)
	case SourceKindFS:
		data, err = fetch.FS(ctx, l.fs, location)
	case SourceKindURL:
		if l.http == nil {
			err = errors.New("http support disabled")
			break
		}
		data, err = fetch.HTTP(ctx, l.http, location, l.timeout)
	default:
		err = errors.New("unsupported source kind")
	}
	if err != nil {
		l.logger.Debug("definition read failed",
			zap.String("kind", string(src.Kind())),
			zap.String("location", location),
			zap.Error(err))
		return Definition{}, parseError(location, err)
	}

	def, err := parse(location, data, l.validate)
	if err != nil {
		l.logger.Debug("definition rejected", zap.String("location", location), zap.Error(err))
		return Definition{}, err
	}

	changes := Normalize(&def)
	l.logger.Debug("definition loaded",
		zap.String("id", def.ID),
		zap.String("location", location),
		zap.Int("settings", len(def.Settings)),
		zap.Any("normalized", changes))
	return def, nil
}

// Load reads the definition file at location with default options and
// returns it normalised.
func Load(location string) (Definition, error) {
	return NewLoader().Load(context.Background(), SourceFromFile(location))
}
