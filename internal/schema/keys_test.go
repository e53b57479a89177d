package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formtree/flat"
)

func passportSchema(t *testing.T) *Schema {
	t.Helper()

	s, err := Parse([]byte(`
fields:
  - id: identification_type
    type: select
    options:
      - id: passport
        fields:
          - id: id_number
          - id: date_issued
      - id: id_card
        fields:
          - id: card_number
  - id: full_name
`))
	require.NoError(t, err)

	return s
}

func TestAllKeys(t *testing.T) {
	t.Parallel()

	keys, err := AllKeys(passportSchema(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"identification_type",
		"identification_type>passport>id_number",
		"identification_type>passport>date_issued",
		"identification_type>id_card>card_number",
		"full_name",
	}, keys)
}

func TestActiveKeysFollowsSelection(t *testing.T) {
	t.Parallel()

	s := passportSchema(t)

	var rec flat.Record
	rec.Set("identification_type", flat.Value{Selection: flat.Selection{"passport"}})

	active, err := ActiveKeys(s, rec)
	require.NoError(t, err)

	assert.Contains(t, active, "identification_type")
	assert.Contains(t, active, "identification_type>passport>id_number")
	assert.Contains(t, active, "identification_type>passport>date_issued")
	assert.Contains(t, active, "full_name")

	// The unselected branch stays inactive.
	assert.NotContains(t, active, "identification_type>id_card>card_number")
}

func TestActiveKeysNoSelection(t *testing.T) {
	t.Parallel()

	var rec flat.Record

	active, err := ActiveKeys(passportSchema(t), rec)
	require.NoError(t, err)

	assert.Contains(t, active, "identification_type")
	assert.Contains(t, active, "full_name")
	assert.NotContains(t, active, "identification_type>passport>id_number")
}

func TestFieldAt(t *testing.T) {
	t.Parallel()

	s := passportSchema(t)

	f, ok := FieldAt(s, []string{"identification_type"})
	require.True(t, ok)
	assert.Equal(t, FieldSelect, f.Type)

	f, ok = FieldAt(s, []string{"identification_type", "passport", "id_number"})
	require.True(t, ok)
	assert.Equal(t, "id_number", f.ID)

	_, ok = FieldAt(s, []string{"identification_type", "passport"})
	assert.False(t, ok, "a chain ending at an option addresses no field")

	_, ok = FieldAt(s, []string{"nope"})
	assert.False(t, ok)

	_, ok = FieldAt(s, []string{"identification_type", "nope", "id_number"})
	assert.False(t, ok)
}
