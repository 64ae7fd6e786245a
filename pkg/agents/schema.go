package agents

import (
	"encoding/json"
	"fmt"

	"github.com/swaggest/jsonschema-go"
)

// SchemaFromStruct generates a JSON Schema from a Go struct using the
// swaggest/jsonschema-go library. This is how extractor targets and tool
// parameter schemas are defined in Go code.
//
// Example:
//
//	type Person struct {
//	    Name string `json:"name" required:"true" description:"Full name"`
//	    Age  int    `json:"age" minimum:"0" maximum:"150"`
//	}
//	schema, err := agents.SchemaFromStruct(Person{})
func SchemaFromStruct(structType any) (any, error) {
	reflector := jsonschema.Reflector{}

	schema, err := reflector.Reflect(structType)
	if err != nil {
		return nil, fmt.Errorf("failed to reflect struct to JSON schema: %w", err)
	}

	return schema, nil
}

// SchemaFromStructAsMap generates a JSON Schema as map[string]any from a Go
// struct. Providers consume schemas as generic JSON values, so this is the
// form tool definitions usually carry.
func SchemaFromStructAsMap(structType any) (map[string]any, error) {
	schema, err := SchemaFromStruct(structType)
	if err != nil {
		return nil, err
	}

	// Convert to JSON and back to get a map[string]any
	jsonBytes, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	var schemaMap map[string]any
	if err := json.Unmarshal(jsonBytes, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema JSON to map: %w", err)
	}

	return schemaMap, nil
}
