package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
	"github.com/ThiRaBrTNK/Radarr/pkg/openapi"
	"github.com/ThiRaBrTNK/Radarr/pkg/settings"
)

func lookupKind(name string) (settings.Kind, error) {
	kind, ok := settings.Lookup(name)
	if !ok {
		return settings.Kind{}, fmt.Errorf("unknown settings kind %q (known: %s)", name, strings.Join(settings.Names(), ", "))
	}
	return kind, nil
}

func defaultFields(kind settings.Kind) ([]model.Field, error) {
	return kind.Schema.DefaultFields(clientschema.WithOptionResolver(settings.Catalogs()))
}

func (a *app) settingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings <kind>",
		Short: "Print the default fields of a settings kind",
		Long:  "Print the default fields of a settings kind as JSON. Kinds: " + strings.Join(settings.Names(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := lookupKind(args[0])
			if err != nil {
				return err
			}
			fields, err := defaultFields(kind)
			if err != nil {
				return err
			}
			a.logger.Debug("extracted default fields", zap.String("kind", kind.Name), zap.Int("fields", len(fields)))
			return a.writeJSON(fields)
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <kind> <values.json>",
		Short: "Validate submitted values and print the bound settings",
		Long: `Validate a JSON object of field values against the OpenAPI schema of a
settings kind, bind it over the kind's defaults and print the result.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := lookupKind(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			var values map[string]model.Value
			if err := json.Unmarshal(data, &values); err != nil {
				return fmt.Errorf("decode values: %w", err)
			}

			fields, err := defaultFields(kind)
			if err != nil {
				return err
			}
			schema, err := openapi.SchemaFromFields(fields)
			if err != nil {
				return err
			}
			raw := make(map[string]any, len(values))
			for name, value := range values {
				raw[name] = value
			}
			if err := openapi.ValidateValues(schema, raw); err != nil {
				return err
			}

			for i := range fields {
				value, ok := values[fields[i].Name]
				if !ok {
					continue
				}
				if value.Kind() == model.KindInvalid {
					fields[i].Value = nil
					continue
				}
				fields[i].Value = &value
			}
			bound, err := kind.Schema.BindValue(fields)
			if err != nil {
				return err
			}
			return a.writeJSON(bound)
		},
	}
}
