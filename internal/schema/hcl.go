package schema

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// hclSchemaFile represents the top-level structure of an HCL schema file
// for decoding.
type hclSchemaFile struct {
	Version string      `hcl:"version,optional"`
	Fields  []*hclField `hcl:"field,block"`
}

// hclField represents a labelled `field` block.
type hclField struct {
	ID      string       `hcl:"id,label"`
	Type    string       `hcl:"type,optional"`
	Label   string       `hcl:"label,optional"`
	Default *cty.Value   `hcl:"default,optional"`
	Options []*hclOption `hcl:"option,block"`
}

// hclOption represents a labelled `option` block nested under a field.
type hclOption struct {
	ID     string      `hcl:"id,label"`
	Label  string      `hcl:"label,optional"`
	Fields []*hclField `hcl:"field,block"`
}

// ParseHCLFile parses an HCL schema file from disk.
func ParseHCLFile(path string) (*Schema, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL schema file %s: %w", path, diags)
	}

	return decodeHCL(file.Body, path)
}

// ParseHCL parses HCL schema source. The filename is used in error messages only.
func ParseHCL(src []byte, filename string) (*Schema, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL schema %s: %w", filename, diags)
	}

	return decodeHCL(file.Body, filename)
}

func decodeHCL(body hcl.Body, filename string) (*Schema, error) {
	var raw hclSchemaFile

	diags := gohcl.DecodeBody(body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL schema %s: %w", filename, diags)
	}

	s := &Schema{Version: raw.Version}

	fields, err := translateHCLFields(raw.Fields)
	if err != nil {
		return nil, fmt.Errorf("invalid HCL schema %s: %w", filename, err)
	}

	s.Fields = fields
	applyDefaults(s)

	return s, nil
}

// translateHCLFields converts decoded HCL blocks into the format-agnostic
// schema model.
func translateHCLFields(raw []*hclField) ([]Field, error) {
	out := make([]Field, 0, len(raw))

	for _, rf := range raw {
		f := Field{
			ID:    rf.ID,
			Type:  FieldType(rf.Type),
			Label: rf.Label,
		}

		if rf.Default != nil && !rf.Default.IsNull() {
			// Defaults may be written as any scalar; coerce to string.
			str, err := convert.Convert(*rf.Default, cty.String)
			if err != nil {
				return nil, fmt.Errorf("field %q: default is not convertible to string: %w", rf.ID, err)
			}

			f.Default = str.AsString()
		}

		for _, ro := range rf.Options {
			subFields, err := translateHCLFields(ro.Fields)
			if err != nil {
				return nil, err
			}

			f.Options = append(f.Options, Option{
				ID:     ro.ID,
				Label:  ro.Label,
				Fields: subFields,
			})
		}

		out = append(out, f)
	}

	return out, nil
}
