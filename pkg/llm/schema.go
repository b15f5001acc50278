package llm

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"
)

// ToolSpec describes a single function tool: the schema the model must fill
// in when it answers.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  openai.FunctionParameters
}

// NewFunctionTool reflects a JSON schema from v and packages it as a function
// tool. The tool name is the snake_case of v's type name.
func NewFunctionTool(v any, description string) (ToolSpec, error) {
	params, err := reflectParameters(v)
	if err != nil {
		return ToolSpec{}, err
	}

	typ := reflect.TypeOf(v)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	return ToolSpec{
		Name:        snakeCase(typ.Name()),
		Description: description,
		Parameters:  params,
	}, nil
}

// MustFunctionTool is NewFunctionTool for package-level tool definitions.
func MustFunctionTool(v any, description string) ToolSpec {
	tool, err := NewFunctionTool(v, description)
	if err != nil {
		panic(err)
	}
	return tool
}

func reflectParameters(v any) (openai.FunctionParameters, error) {
	// Structured outputs use a subset of JSON schema, these flags keep the
	// reflected schema inside the subset
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reflected schema: %w", err)
	}

	params := openai.FunctionParameters{}
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reflected schema: %w", err)
	}

	// the envelope keywords belong to the tool, not its parameters
	for _, key := range []string{"$schema", "$id", "title", "description"} {
		delete(params, key)
	}

	return params, nil
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
