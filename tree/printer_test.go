package tree

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formtree/flat"
)

func ExamplePrinter() {
	var r flat.Record
	r.Set("contact_method", flat.Value{Selection: flat.Selection{"email", "phone"}})
	r.Set("contact_method>email>address", flat.Value{Content: "ada@example.com"})

	roots, _ := Build(r)
	_ = NewPrinter(os.Stdout).Print(roots)

	// Output:
	// contact_method
	// ├── email
	// │   └── address content="ada@example.com"
	// └── phone
}

func TestPrinterOutput(t *testing.T) {
	t.Parallel()

	roots, err := Build(record(t,
		"identification_type", flat.Value{Selection: flat.Selection{"passport"}},
		"identification_type>passport>id_number", flat.Value{Content: "Q123456789"},
		"full_name", flat.Value{Content: "Ada Lovelace"},
	))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, NewPrinter(buf).Print(roots))

	expected := `identification_type
└── passport
    └── id_number content="Q123456789"
full_name content="Ada Lovelace"
`
	assert.Equal(t, expected, buf.String())
}

func TestPrinterBranches(t *testing.T) {
	t.Parallel()

	roots, err := Build(record(t,
		"a>b", flat.Value{},
		"a>c>d", flat.Value{},
	))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, NewPrinter(buf).Print(roots))

	expected := `a
├── b
└── c
    └── d
`
	assert.Equal(t, expected, buf.String())
}
