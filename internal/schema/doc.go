// Package schema loads and models the static field/option definition tree
// that determines which composite keys a form can legally produce.
//
// The definition tree is authored by hand, in YAML or HCL, and consumed by
// the rendering layer; the tree builder itself never validates against it.
// This package additionally offers Check, a structural lint of a flat
// record against the definitions: malformed keys, unknown identifiers
// (with close-match suggestions), selection shape mismatches, and stale
// entries left behind by fields toggled out of view.
//
// # YAML shape
//
//	version: "1"
//	fields:
//	  - id: identification_type
//	    type: select
//	    options:
//	      - id: passport
//	        fields:
//	          - id: id_number
//	            type: text
//
// # HCL shape
//
//	field "identification_type" {
//	  type = "select"
//	  option "passport" {
//	    field "id_number" { type = "text" }
//	  }
//	}
package schema
