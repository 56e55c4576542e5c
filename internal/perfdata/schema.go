// internal/perfdata/schema.go
package perfdata

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// resultsSchema describes the shape of one results file. Validation runs on
// the YAML document converted to JSON.
const resultsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "queries"],
  "properties": {
    "name": { "type": "string", "minLength": 1 },
    "description": { "type": "string" },
    "scale": { "type": "number" },
    "timeout": { "type": ["number", "null"] },
    "index_time": { "type": ["number", "null"] },
    "index_size": { "type": ["number", "null"] },
    "queries": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "query", "runtime_info", "headers", "results"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "description": { "type": "string" },
          "query": { "type": "string" },
          "runtime_info": {
            "type": "object",
            "required": ["client_time"],
            "properties": {
              "client_time": { "type": "number", "minimum": 0 }
            }
          },
          "headers": { "type": "array", "items": { "type": "string" } },
          "results": { "type": ["array", "string"] },
          "result_size": { "type": ["integer", "null"] },
          "server_restarted": { "type": "boolean" }
        }
      }
    }
  }
}`

// ValidateResults checks one results YAML document against the schema and
// returns an error listing every violation.
func ValidateResults(yamlData []byte) error {
	var generic any
	if err := yaml.Unmarshal(yamlData, &generic); err != nil {
		return fmt.Errorf("not valid YAML: %w", err)
	}

	jsonData, err := json.Marshal(normalizeYAML(generic))
	if err != nil {
		return fmt.Errorf("converting document to JSON: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resultsSchema),
		gojsonschema.NewBytesLoader(jsonData),
	)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("results document invalid: %s", strings.Join(problems, "; "))
}

// normalizeYAML rewrites map[any]any trees (as produced by older YAML
// decoders) into map[string]any so they can be marshaled as JSON.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
