package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestSchema(t *testing.T) string {
	t.Helper()

	schemaPath := filepath.Join(t.TempDir(), "test.schema.json")
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"price": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644))
	return schemaPath
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTestSchema(t)

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"valid document", `{"name": "carrot", "price": 10}`, false},
		{"missing required field", `{"price": 10}`, true},
		{"wrong type", `{"name": "carrot", "price": "ten"}`, true},
		{"below minimum", `{"name": "carrot", "price": -1}`, true},
		{"malformed JSON", `{"name": `, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), schemaPath)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSchemaValidator_MissingSchemaFile(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`{}`), filepath.Join(t.TempDir(), "nope.schema.json"))
	assert.Error(t, err)
}

func TestSchemaValidator_CachesCompiledSchema(t *testing.T) {
	v := NewSchemaValidator()
	schemaPath := writeTestSchema(t)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), schemaPath))

	// Second validation hits the cache even if the file disappears.
	require.NoError(t, os.Remove(schemaPath))
	assert.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), schemaPath))
}
