package clientschema

import (
	"github.com/ThiRaBrTNK/Radarr/internal/labels"
	"github.com/ThiRaBrTNK/Radarr/pkg/definition"
	"github.com/ThiRaBrTNK/Radarr/pkg/model"
)

// storageTextType is the definition-level name of a free-text setting, which
// renders as a textbox.
const storageTextType = "text"

// DeclarativeOption configures FromDefinition.
type DeclarativeOption func(*declarativeConfig)

type declarativeConfig struct {
	preferSettingType bool
}

// PreferSettingType makes each setting keep its own type, using the
// definition type only for settings that declare none. By default the
// definition type overrides every setting.
func PreferSettingType() DeclarativeOption {
	return func(cfg *declarativeConfig) {
		cfg.preferSettingType = true
	}
}

// FromDefinition builds the field list for a normalised declarative
// definition. Fields follow document order with Order 0..n-1. Labels are
// stripped of markup, and a blank label is derived from the setting name.
// Declarative settings carry no help text, advanced flag or select options.
func FromDefinition(def definition.Definition, options ...DeclarativeOption) []model.Field {
	var cfg declarativeConfig
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	fields := make([]model.Field, 0, len(def.Settings))
	for i, setting := range def.Settings {
		typ := def.Type
		if cfg.preferSettingType && setting.Type != "" {
			typ = setting.Type
		}
		fields = append(fields, model.Field{
			Name:     setting.Name,
			Label:    labels.Resolve(setting.Label, setting.Name),
			HelpText: "",
			HelpLink: "",
			Order:    i,
			Advanced: false,
			Type:     renderType(typ),
		})
	}
	return fields
}

func renderType(typ string) model.FieldType {
	if typ == storageTextType {
		return model.FieldTypeTextbox
	}
	return model.FieldType(typ)
}
