package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/bnema/tessera/internal/domain/entity"
)

const (
	filePerm       = 0o644
	schemaBaseURL  = "https://github.com/bnema/tessera/"
	configSchemaID = schemaBaseURL + "config.schema.json"
	layoutSchemaID = schemaBaseURL + "layout.schema.json"
)

// ConfigSchema returns the JSON schema of config.toml.
func ConfigSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})
	schema.ID = configSchemaID
	schema.Title = "Tessera Configuration"
	schema.Description = "Configuration schema for tessera, a tiling layout engine"
	return marshalSchema(schema)
}

// LayoutSchema returns the JSON schema of a persisted workspace layout.
func LayoutSchema() ([]byte, error) {
	r := &jsonschema.Reflector{Mapper: mapLayoutNode}
	schema := r.Reflect(&entity.SessionState{})
	if schema.Definitions == nil {
		schema.Definitions = jsonschema.Definitions{}
	}
	schema.Definitions[layoutNodeDef] = layoutNodeSchema()
	schema.ID = layoutSchemaID
	schema.Title = "Tessera Layout Snapshot"
	schema.Description = "Layout tree, tile records and focus of one workspace"
	return marshalSchema(schema)
}

const layoutNodeDef = "LayoutNode"

var layoutNodeType = reflect.TypeOf(entity.LayoutNode{})

// mapLayoutNode replaces the struct reflection of LayoutNode, whose JSON
// form is the tagged leaf/split shape rather than its Go fields.
func mapLayoutNode(t reflect.Type) *jsonschema.Schema {
	if t != layoutNodeType {
		return nil
	}
	return &jsonschema.Schema{Ref: "#/$defs/" + layoutNodeDef}
}

func layoutNodeSchema() *jsonschema.Schema {
	child := &jsonschema.Schema{Ref: "#/$defs/" + layoutNodeDef}

	leaf := jsonschema.NewProperties()
	leaf.Set("type", &jsonschema.Schema{Const: "leaf"})
	leaf.Set("id", &jsonschema.Schema{Type: "string", MinLength: ptr(uint64(1))})
	leaf.Set("tileId", &jsonschema.Schema{Type: "string", MinLength: ptr(uint64(1))})

	split := jsonschema.NewProperties()
	split.Set("type", &jsonschema.Schema{Const: "split"})
	split.Set("id", &jsonschema.Schema{Type: "string", MinLength: ptr(uint64(1))})
	split.Set("direction", &jsonschema.Schema{Type: "string", Enum: []any{
		string(entity.SplitHorizontal), string(entity.SplitVertical),
	}})
	split.Set("ratio", &jsonschema.Schema{
		Type:    "number",
		Minimum: json.Number(fmt.Sprint(entity.MinRatio)),
		Maximum: json.Number(fmt.Sprint(entity.MaxRatio)),
	})
	split.Set("first", child)
	split.Set("second", child)

	return &jsonschema.Schema{
		Description: "A leaf hosting one tile, or a split dividing space between two children",
		OneOf: []*jsonschema.Schema{
			{
				Type:                 "object",
				Properties:           leaf,
				Required:             []string{"type", "id", "tileId"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
			{
				Type:                 "object",
				Properties:           split,
				Required:             []string{"type", "id", "direction", "ratio", "first", "second"},
				AdditionalProperties: jsonschema.FalseSchema,
			},
		},
	}
}

func ptr[T any](v T) *T { return &v }

func marshalSchema(schema *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the config schema next to config.toml.
func (m *Manager) WriteSchemaFile() (string, error) {
	data, err := ConfigSchema()
	if err != nil {
		return "", err
	}
	schemaFile := filepath.Join(m.configDir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
