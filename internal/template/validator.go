package template

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/template.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

// manifestSchema compiles the embedded manifest schema on first use.
var manifestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	return compile("template.schema.json", doc)
})

func compile(name string, doc interface{}) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource %s: %w", name, err)
	}
	schema, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return schema, nil
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name", "/parameters/properties")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// ValidateManifest validates raw manifest YAML against the embedded template
// schema. The error return is for I/O or schema compilation failures;
// validation issues come back in the ValidationResult.
func ValidateManifest(data []byte) (*ValidationResult, error) {
	schema, err := manifestSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	inst, err := toSchemaInstance(raw)
	if err != nil {
		return nil, err
	}
	return runValidation(schema, inst)
}

// ValidateValues validates scaffold parameter values against the JSON
// Schema declared by the manifest's parameters block. A manifest without a
// parameters block accepts any values.
func ValidateValues(m *Manifest, values map[string]interface{}) (*ValidationResult, error) {
	if len(m.Parameters) == 0 {
		return &ValidationResult{Valid: true}, nil
	}

	schemaDoc, err := toSchemaInstance(m.Parameters)
	if err != nil {
		return nil, fmt.Errorf("preparing parameters schema for %s: %w", m.Name, err)
	}
	schema, err := compile("values.schema.json", schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("parameters block of %s: %w", m.Name, err)
	}

	inst, err := toSchemaInstance(values)
	if err != nil {
		return nil, err
	}
	return runValidation(schema, inst)
}

// toSchemaInstance round-trips a decoded YAML/JSON value through JSON so the
// validator sees json.Number-typed numerics regardless of the source decoder.
func toSchemaInstance(v interface{}) (interface{}, error) {
	jsonData, err := json.Marshal(stringKeys(v))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}
	return inst, nil
}

// stringKeys rewrites YAML maps with non-string keys so json.Marshal accepts
// them. yaml v3 only falls back to interface{} keys for exotic documents,
// but a bad manifest should surface as a validation issue, not a marshal
// error.
func stringKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			val[k] = stringKeys(item)
		}
		return val
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = stringKeys(item)
		}
		return m
	case []interface{}:
		for i, item := range val {
			val[i] = stringKeys(item)
		}
		return val
	default:
		return val
	}
}

func runValidation(schema *jsonschema.Schema, inst interface{}) (*ValidationResult, error) {
	err := schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &ValidationResult{Issues: flattenIssues(validationErr)}, nil
}

// flattenIssues walks the ValidationError tree and keeps the leaf errors,
// which carry the specific property information. Branch-level errors from
// oneOf/allOf wrappers repeat what their leaves already say, so they are
// dropped, and overlapping branches are reported once.
func flattenIssues(root *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[string]bool)

	stack := []*jsonschema.ValidationError{root}
	for len(stack) > 0 {
		ve := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(ve.Causes) > 0 {
			stack = append(stack, ve.Causes...)
			continue
		}

		issue, ok := leafIssue(ve)
		if !ok {
			continue
		}
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			issues = append(issues, issue)
		}
	}

	if len(issues) == 0 {
		return []ValidationIssue{{Message: root.Error()}}
	}
	return issues
}

func leafIssue(ve *jsonschema.ValidationError) (ValidationIssue, bool) {
	if ve.ErrorKind == nil {
		return ValidationIssue{}, false
	}

	keyword := ""
	if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
		keyword = kwPath[len(kwPath)-1]
	}
	switch keyword {
	case "", "oneOf", "allOf", "anyOf", "$ref":
		return ValidationIssue{}, false
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	return ValidationIssue{
		Path:    path,
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}, true
}
