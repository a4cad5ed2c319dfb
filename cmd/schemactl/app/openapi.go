package app

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"

	"github.com/ThiRaBrTNK/Radarr/pkg/openapi"
	"github.com/ThiRaBrTNK/Radarr/pkg/settings"
)

func (a *app) openapiCmd() *cobra.Command {
	var title, version string
	cmd := &cobra.Command{
		Use:   "openapi [kind...]",
		Short: "Print an OpenAPI document describing settings kinds",
		Long:  "Print an OpenAPI document with one component schema per settings kind. Without arguments every kind is included.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = settings.Names()
			}
			schemas := make(map[string]*openapi3.Schema, len(names))
			for _, name := range names {
				kind, err := lookupKind(name)
				if err != nil {
					return err
				}
				fields, err := defaultFields(kind)
				if err != nil {
					return err
				}
				schema, err := openapi.SchemaFromFields(fields)
				if err != nil {
					return err
				}
				schemas[kind.Name] = schema
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			doc, err := openapi.Document(ctx, title, version, schemas)
			if err != nil {
				return err
			}
			return a.writeJSON(doc)
		},
	}
	cmd.Flags().StringVar(&title, "title", "Settings", "Document title")
	cmd.Flags().StringVar(&version, "version", "1.0.0", "Document version")
	return cmd
}
