package nlu

import "github.com/santhosh-tekuri/jsonschema/v5"

// The backend's output is untrusted input: it is checked against this schema
// before any field is read. Unknown keys are allowed (alias variants are
// resolved later); known keys must carry a usable type.
const filterSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "city":          {"type": ["string", "null"]},
    "district":      {"type": ["string", "null"]},
    "price_min":     {"type": ["number", "string", "null"]},
    "price_max":     {"type": ["number", "string", "null"]},
    "guest_count":   {"type": ["number", "string", "null"]},
    "property_type": {"type": ["string", "null"]},
    "features":      {"type": ["array", "null"], "items": {"type": "string"}},
    "check_in_date":  {"type": ["string", "null"]},
    "check_out_date": {"type": ["string", "null"]}
  }
}`

var filterSchema = jsonschema.MustCompileString("filter.schema.json", filterSchemaJSON)

func validatePayload(payload map[string]any) error {
	return filterSchema.Validate(payload)
}
