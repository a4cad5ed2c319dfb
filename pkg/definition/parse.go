package definition

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

//go:embed definition.schema.json
var definitionSchema []byte

const definitionSchemaURL = "definition.schema.json"

var (
	compileOnce      sync.Once
	compiledSchema   *jsonschema.Schema
	errSchemaCompile error
)

func structuralSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(definitionSchema))
		if err != nil {
			errSchemaCompile = fmt.Errorf("definition: decode embedded schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(definitionSchemaURL, doc); err != nil {
			errSchemaCompile = fmt.Errorf("definition: register embedded schema: %w", err)
			return
		}
		compiledSchema, errSchemaCompile = compiler.Compile(definitionSchemaURL)
	})
	return compiledSchema, errSchemaCompile
}

// Parse decodes and validates one raw document. The result is not
// normalised. location is only used in error messages.
func Parse(location string, data []byte) (Definition, error) {
	return parse(location, data, true)
}

func parse(location string, data []byte, validate bool) (Definition, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Definition{}, parseError(location, errors.New("empty document"))
	}

	if validate {
		if err := validateStructure(data); err != nil {
			return Definition{}, parseError(location, err)
		}
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, parseError(location, err)
	}
	return def, nil
}

func validateStructure(data []byte) error {
	raw, err := k8syaml.YAMLToJSON(data)
	if err != nil {
		return err
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	schema, err := structuralSchema()
	if err != nil {
		return err
	}
	return schema.Validate(instance)
}
