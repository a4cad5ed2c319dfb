package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/definition"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

const keyPreferSettingType = "prefer-setting-type"

func (a *app) loader() definition.Loader {
	opts := []definition.LoaderOption{definition.WithLogger(a.logger.Named("definition"))}
	if a.v.GetBool(keyAllowHTTP) {
		opts = append(opts, definition.WithHTTPFallback(a.v.GetDuration(keyHTTPTimeout)))
	}
	return definition.NewCache(definition.NewLoader(opts...))
}

func (a *app) source(location string) (definition.Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("definition location is empty")
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		if !a.v.GetBool(keyAllowHTTP) {
			return nil, fmt.Errorf("remote definition %s requires --%s", location, keyAllowHTTP)
		}
		return definition.ParseURLSource(location)
	}
	return definition.SourceFromFile(location), nil
}

func (a *app) fieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields <location>...",
		Short: "Print the fields declared by indexer definitions",
		Long: `Load and normalise one or more declarative indexer definitions and print
the fields their settings declare. With several locations the output is an
object keyed by definition id, or by location for definitions without one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []clientschema.DeclarativeOption
			if a.v.GetBool(keyPreferSettingType) {
				opts = append(opts, clientschema.PreferSettingType())
			}

			loader := a.loader()
			byID := make(map[string][]model.Field, len(args))
			var last []model.Field
			for _, location := range args {
				def, err := a.load(cmd.Context(), loader, location)
				if err != nil {
					return err
				}
				last = clientschema.FromDefinition(def, opts...)
				key := def.ID
				if key == "" {
					key = location
				}
				if _, dup := byID[key]; dup {
					return fmt.Errorf("definition %q loaded twice (%s)", key, location)
				}
				byID[key] = last
			}
			if len(args) == 1 {
				return a.writeJSON(last)
			}
			return a.writeJSON(byID)
		},
	}
	cmd.Flags().Bool(keyPreferSettingType, false, "Keep each setting's own type instead of the definition type")
	if err := a.v.BindPFlag(keyPreferSettingType, cmd.Flags().Lookup(keyPreferSettingType)); err != nil {
		panic(err)
	}
	return cmd
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <location>",
		Short: "Print a normalised indexer definition as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.load(cmd.Context(), a.loader(), args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err := enc.Encode(def); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func (a *app) load(ctx context.Context, loader definition.Loader, location string) (definition.Definition, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	src, err := a.source(location)
	if err != nil {
		return definition.Definition{}, err
	}
	def, err := loader.Load(ctx, src)
	if err != nil {
		return definition.Definition{}, err
	}
	a.logger.Info("definition loaded", zap.String("id", def.ID), zap.String("location", src.Location()))
	return def, nil
}
