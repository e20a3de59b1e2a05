package formfile

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/invopop/jsonschema"
)

func newSchemaReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		KeyNamer:                   strcase.ToSnake,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
		AllowAdditionalProperties:  false,
	}
}

// Schema returns the JSON schema of the YAML form file.
func Schema() *jsonschema.Schema {
	js := newSchemaReflector().Reflect(reflect.TypeOf(File{}))
	js.Title = "chartform form file"

	return js
}

// WriteSchema writes the indented JSON schema to w.
func WriteSchema(w io.Writer) error {
	b, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	return nil
}
