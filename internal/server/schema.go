package server

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Numeric and boolean profile fields accept strings so raw form values can
// be posted as-is; they are coerced by the profile package.
const profileSchemaJSON = `{
  "type": "object",
  "properties": {
    "county":           {"type": ["string", "null"]},
    "location":         {"type": ["string", "null"]},
    "income":           {"type": ["number", "string", "null"]},
    "householdSize":    {"type": ["number", "string", "null"]},
    "firstTimeBuyer":   {"type": ["boolean", "string", "null"]},
    "savings":          {"type": ["number", "string", "null"]},
    "downPaymentSaved": {"type": ["number", "string", "null"]},
    "creditScore":      {"type": ["string", "null"]},
    "occupation":       {"type": ["string", "null"]},
    "veteranStatus":    {"type": ["boolean", "string", "null"]},
    "selectedPrograms": {
      "anyOf": [
        {"type": "array", "items": {"type": "string"}},
        {"type": "string"},
        {"type": "null"}
      ]
    },
    "selectedPath":     {"type": ["string", "null"]},
    "purchasePrice":    {"type": ["number", "string", "null"]}
  }
}`

const profileUpdateSchemaJSON = `{
  "type": "object",
  "properties": {
    "profile": {"type": "object"},
    "update":  {"type": "object"}
  },
  "required": ["update"]
}`

const combinationSchemaJSON = `{
  "type": "object",
  "properties": {
    "programIds": {"type": "array", "items": {"type": "string"}, "minItems": 1}
  },
  "required": ["programIds"]
}`

var (
	profileSchema       = mustSchema(profileSchemaJSON)
	profileUpdateSchema = mustSchema(profileUpdateSchemaJSON)
	combinationSchema   = mustSchema(combinationSchemaJSON)
)

func mustSchema(source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return schema
}

// validateDocument checks body against schema and joins every violation
// into one error.
func validateDocument(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
}
