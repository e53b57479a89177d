// Package flat models the flattened side of a form submission: an
// insertion-ordered mapping from composite path keys to leaf values.
//
// The rendering layer produces this mapping (one Record per form instance);
// package tree consumes it and reconstructs the nested field tree. Records
// round-trip through JSON and YAML while preserving entry order, which is
// significant: it determines node-creation order for first-seen siblings.
//
// # Wire shape
//
// A record is a plain object; each value carries optional free-text content
// and an optional selection, which may be a single identifier or a list:
//
//	{
//	  "identification_type": {"selection": "passport"},
//	  "identification_type>passport>id_number": {"content": "Q123456789"}
//	}
package flat
