package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunNoArgsShowsUsage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, run(&out, nil))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(&out, []string{"frobnicate"})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunBuildJSON(t *testing.T) {
	records := writeFile(t, "records.json", `[
  {
    "identification_type": {"selection": "passport"},
    "identification_type>passport>id_number": {"content": "Q123456789"}
  }
]`)

	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"build", records}))

	assert.JSONEq(t, `[
  [
    {
      "fieldId": "identification_type",
      "content": "",
      "selected": [
        {
          "fieldId": "passport",
          "content": "",
          "selected": [
            {
              "fieldId": "id_number",
              "content": "Q123456789",
              "selected": []
            }
          ]
        }
      ]
    }
  ]
]`, out.String())
}

func TestRunBuildYAMLFormat(t *testing.T) {
	records := writeFile(t, "records.yaml", `
- full_name:
    content: Ada
`)

	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"build", "-format", "yaml", records}))
	assert.Contains(t, out.String(), "fieldId: full_name")
	assert.Contains(t, out.String(), "content: Ada")
}

func TestRunBuildMalformedKey(t *testing.T) {
	records := writeFile(t, "records.json", `[{"a>>b": {"content": "x"}}]`)

	var out bytes.Buffer
	err := run(&out, []string{"build", records})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "a>>b")
}

func TestRunBuildBadFormat(t *testing.T) {
	records := writeFile(t, "records.json", `[]`)

	var out bytes.Buffer
	err := run(&out, []string{"build", "-format", "xml", records})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunBuildMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []string{"build", filepath.Join(t.TempDir(), "nope.json")})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

const checkSchemaYAML = `
fields:
  - id: identification_type
    type: select
    options:
      - id: passport
        fields:
          - id: id_number
  - id: full_name
`

func TestRunCheckPasses(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", checkSchemaYAML)
	records := writeFile(t, "records.json", `[
  {
    "identification_type": {"selection": "passport"},
    "identification_type>passport>id_number": {"content": "x"}
  }
]`)

	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"check", "-schema", schemaPath, records}))
}

func TestRunCheckFails(t *testing.T) {
	schemaPath := writeFile(t, "schema.yaml", checkSchemaYAML)
	records := writeFile(t, "records.json", `[{"full_nam": {"content": "x"}}]`)

	var out bytes.Buffer
	err := run(&out, []string{"check", "-schema", schemaPath, records})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, out.String(), "unknown_field")
	assert.Contains(t, out.String(), "full_name")
}

func TestRunCheckRequiresSchema(t *testing.T) {
	records := writeFile(t, "records.json", `[]`)

	var out bytes.Buffer
	err := run(&out, []string{"check", records})
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRunPrint(t *testing.T) {
	records := writeFile(t, "records.json", `[
  {
    "identification_type": {"selection": "passport"},
    "identification_type>passport>id_number": {"content": "Q1"}
  }
]`)

	var out bytes.Buffer
	require.NoError(t, run(&out, []string{"print", records}))

	assert.Contains(t, out.String(), "identification_type")
	assert.Contains(t, out.String(), "└──")
	assert.Contains(t, out.String(), `id_number content="Q1"`)
}
