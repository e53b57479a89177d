package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHCL(t *testing.T) {
	t.Parallel()

	src := `
version = "1"

field "identification_type" {
  type  = "select"
  label = "Identification type"

  option "passport" {
    label = "Passport"

    field "id_number" {
      type = "text"
    }

    field "date_issued" {
      type = "text"
    }
  }

  option "id_card" {
    field "card_number" {}
  }
}

field "age" {
  default = 18
}
`

	s, err := ParseHCL([]byte(src), "schema.hcl")
	require.NoError(t, err)

	assert.Equal(t, "1", s.Version)
	require.Len(t, s.Fields, 2)

	ident := s.Fields[0]
	assert.Equal(t, "identification_type", ident.ID)
	assert.Equal(t, FieldSelect, ident.Type)
	require.Len(t, ident.Options, 2)

	passport := ident.Options[0]
	assert.Equal(t, "passport", passport.ID)
	assert.Equal(t, "Passport", passport.Label)
	require.Len(t, passport.Fields, 2)
	assert.Equal(t, "id_number", passport.Fields[0].ID)
	assert.Equal(t, FieldText, passport.Fields[0].Type)

	// Omitted type inferred after translation.
	assert.Equal(t, FieldText, ident.Options[1].Fields[0].Type)

	// Scalar defaults are coerced to string.
	assert.Equal(t, "18", s.Fields[1].Default)
}

func TestParseHCLSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := ParseHCL([]byte(`field "a" {`), "bad.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.hcl")
}

func TestParseHCLBadDefault(t *testing.T) {
	t.Parallel()

	_, err := ParseHCL([]byte(`
field "a" {
  default = ["not", "a", "scalar"]
}
`), "bad.hcl")
	assert.Error(t, err)
}
