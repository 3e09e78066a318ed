package template

import (
	"testing"
)

func TestValidateManifest(t *testing.T) {
	result, err := ValidateManifest([]byte(validManifest))
	if err != nil {
		t.Fatalf("ValidateManifest failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("manifest reported invalid: %+v", result.Issues)
	}
}

func TestValidateManifest_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		manifest string
	}{
		{"missing name", "title: Nameless\n"},
		{"bad name pattern", "name: Not_Valid\n"},
		{"unknown field", "name: ok\nbogus: true\n"},
		{"bad version", "name: ok\nversion: not.a.version\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateManifest([]byte(tc.manifest))
			if err != nil {
				t.Fatalf("ValidateManifest failed: %v", err)
			}
			if result.Valid {
				t.Error("manifest reported valid, want issues")
			}
			if len(result.Issues) == 0 {
				t.Error("no issues reported for an invalid manifest")
			}
		})
	}
}

func TestValidateValues(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatal(err)
	}

	result, err := ValidateValues(m, map[string]interface{}{"componentName": "my-component"})
	if err != nil {
		t.Fatalf("ValidateValues failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("values reported invalid: %+v", result.Issues)
	}
}

func TestValidateValues_Invalid(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		values map[string]interface{}
	}{
		{"missing required", map[string]interface{}{}},
		{"wrong type", map[string]interface{}{"componentName": 42}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ValidateValues(m, tc.values)
			if err != nil {
				t.Fatalf("ValidateValues failed: %v", err)
			}
			if result.Valid {
				t.Error("values reported valid, want issues")
			}
		})
	}
}

func TestValidateValues_NoParameters(t *testing.T) {
	m := &Manifest{Name: "anything-goes"}
	result, err := ValidateValues(m, map[string]interface{}{"whatever": true})
	if err != nil {
		t.Fatalf("ValidateValues failed: %v", err)
	}
	if !result.Valid {
		t.Error("a manifest without parameters should accept any values")
	}
}
