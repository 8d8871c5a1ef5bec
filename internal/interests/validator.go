package interests

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

// interestsSchema constrains the POST /api/interests payload to a
// non-empty object of topic -> boolean pairs
const interestsSchema = `{
	"type": "object",
	"minProperties": 1,
	"maxProperties": 50,
	"propertyNames": {"minLength": 1, "maxLength": 64},
	"additionalProperties": {"type": "boolean"}
}`

var compiledSchema = mustCompile()

func mustCompile() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile([]byte(interestsSchema))
	if err != nil {
		panic(fmt.Sprintf("invalid interests schema: %v", err))
	}
	return schema
}

// ValidatePayload validates an interests payload against the JSON Schema
func ValidatePayload(payload map[string]interface{}) error {
	result := compiledSchema.Validate(payload)
	if !result.IsValid() {
		var errorMessages []string
		for field, evalErr := range result.Errors {
			errorMessages = append(errorMessages, fmt.Sprintf("%s: %s", field, evalErr.Error()))
		}
		return fmt.Errorf("interests validation failed: %s", strings.Join(errorMessages, "; "))
	}
	return nil
}
