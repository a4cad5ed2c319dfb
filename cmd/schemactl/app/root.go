// Package app wires the schemactl commands.
package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ThiRaBrTNK/Radarr/pkg/prompt"
)

// EnvPrefix prefixes environment variables that override flags, e.g.
// SCHEMACTL_LOG_LEVEL.
const EnvPrefix = "SCHEMACTL"

const (
	keyConfig      = "config"
	keyLogLevel    = "log-level"
	keyLogFormat   = "log-format"
	keyAllowHTTP   = "allow-http"
	keyHTTPTimeout = "http-timeout"
)

// Option configures the command tree, mostly for tests.
type Option func(*app)

// WithOutput redirects command output and logs.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *app) {
		if out != nil {
			a.out = out
		}
		if errOut != nil {
			a.errOut = errOut
		}
	}
}

// WithPromptDriver replaces the terminal driver used by the prompt command.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(a *app) {
		a.driver = driver
	}
}

type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
	driver prompt.Driver
}

// NewRootCmd builds the schemactl command tree. Each call has its own
// configuration state.
func NewRootCmd(options ...Option) *cobra.Command {
	a := &app{
		v:      viper.New(),
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(a)
		}
	}

	root := &cobra.Command{
		Use:               "schemactl",
		Short:             "Inspect settings schemas and indexer definitions",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "Config file (YAML, JSON or TOML)")
	flags.String(keyLogLevel, "warn", "Log level (debug, info, warn, error)")
	flags.String(keyLogFormat, "console", "Log format (console, json)")
	flags.Bool(keyAllowHTTP, false, "Allow loading definitions from http(s) URLs")
	flags.Duration(keyHTTPTimeout, 10*time.Second, "Timeout for remote definitions")
	for _, key := range []string{keyConfig, keyLogLevel, keyLogFormat, keyAllowHTTP, keyHTTPTimeout} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("schemactl: bind flag %s: %v", key, err))
		}
	}

	root.AddCommand(
		a.settingsCmd(),
		a.fieldsCmd(),
		a.normalizeCmd(),
		a.optionsCmd(),
		a.openapiCmd(),
		a.validateCmd(),
		a.promptCmd(),
	)
	return root
}

func (a *app) init() error {
	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	logger, err := newLogger(a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat), a.errOut)
	if err != nil {
		return err
	}
	a.logger = logger
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("configuration loaded", zap.String("file", used))
	}
	return nil
}

func (a *app) writeJSON(value any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
