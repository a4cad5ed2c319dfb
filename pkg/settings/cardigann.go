package settings

import (
	"context"
	"errors"

	"github.com/ThiRaBrTNK/Radarr/pkg/clientschema"
	"github.com/ThiRaBrTNK/Radarr/pkg/definition"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// Cardigann configures an indexer described by a declarative definition.
type Cardigann struct {
	DefinitionLocation string
}

// CardigannSchema exposes Cardigann settings.
var CardigannSchema = clientschema.NewSchema(
	clientschema.String("DefinitionLocation", func(s *Cardigann) *string { return &s.DefinitionLocation }, clientschema.FieldMeta{
		Label:    "Definition",
		HelpText: "Location of the indexer definition file",
		Order:    0,
		Type:     model.FieldTypeFilePath,
	}),
)

// Fields loads the configured definition through loader and returns the
// fields its settings declare.
func (c Cardigann) Fields(ctx context.Context, loader definition.Loader, options ...clientschema.DeclarativeOption) ([]model.Field, error) {
	if c.DefinitionLocation == "" {
		return nil, errors.New("settings: cardigann definition location is empty")
	}
	if loader == nil {
		loader = definition.NewLoader()
	}
	def, err := loader.Load(ctx, definition.SourceFromFile(c.DefinitionLocation))
	if err != nil {
		return nil, err
	}
	return clientschema.FromDefinition(def, options...), nil
}
