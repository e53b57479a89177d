package pathkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
		key      string
	}{
		{
			name:     "single segment",
			segments: []string{"identification_type"},
			key:      "identification_type",
		},
		{
			name:     "two segments",
			segments: []string{"a", "b"},
			key:      "a>b",
		},
		{
			name:     "deep chain",
			segments: []string{"identification_type", "identification_info_for_passport1", "id_for_passport"},
			key:      "identification_type>identification_info_for_passport1>id_for_passport",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, err := Encode(tt.segments)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)

			assert.Equal(t, tt.segments, Decode(key))
		})
	}
}

func TestEncodeRejectsBadSegments(t *testing.T) {
	t.Parallel()

	_, err := Encode(nil)
	assert.Error(t, err)

	_, err = Encode([]string{"a", ""})
	assert.Error(t, err)

	_, err = Encode([]string{"a>b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved separator")
}

func TestDecodeIsLiteral(t *testing.T) {
	t.Parallel()

	// No trimming, empty segments preserved.
	assert.Equal(t, []string{" a ", "b"}, Decode(" a >b"))
	assert.Equal(t, []string{"a", "", "b"}, Decode("a>>b"))
	assert.Equal(t, []string{""}, Decode(""))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate([]string{"a"}))
	assert.NoError(t, Validate([]string{"a", "b", "c"}))

	assert.Error(t, Validate(nil))
	assert.Error(t, Validate([]string{""}))
	assert.Error(t, Validate([]string{"a", "", "b"}))
}
