// Package pathkey defines the canonical string encoding of an ancestor
// chain of field identifiers into a single composite key, and its inverse.
//
// A composite key flattens one path of an arbitrarily deep field tree into
// a single mapping key, e.g. "identification_type>passport>id_number".
// Encode and Decode are pure; Decode is the inverse of Encode for any key
// Encode produced.
package pathkey

import (
	"fmt"
	"strings"
)

// Separator joins ancestor segments inside a composite key. It is reserved:
// no field identifier may contain it. That contract is owned by the schema,
// Encode only rejects violations it can see.
const Separator = ">"

// Encode joins an ordered ancestor-segment sequence into a composite key.
// It fails on an empty sequence and on any segment that is empty or contains
// the separator.
func Encode(segments []string) (string, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("cannot encode empty segment sequence")
	}

	for _, seg := range segments {
		if seg == "" {
			return "", fmt.Errorf("cannot encode empty segment")
		}

		if strings.Contains(seg, Separator) {
			return "", fmt.Errorf("segment %q contains reserved separator %q", seg, Separator)
		}
	}

	return strings.Join(segments, Separator), nil
}

// Decode splits a composite key into its ordered ancestor segments.
// The split is literal: no trimming, empty segments are preserved.
// Structural validation is a separate concern, see Validate.
func Decode(key string) []string {
	return strings.Split(key, Separator)
}

// Validate checks that a decoded segment sequence is structurally sound:
// at least one segment, and every segment a non-empty identifier.
func Validate(segments []string) error {
	if len(segments) == 0 {
		return fmt.Errorf("key decodes to zero segments")
	}

	for i, seg := range segments {
		if seg == "" {
			return fmt.Errorf("segment %d is empty", i)
		}
	}

	return nil
}
