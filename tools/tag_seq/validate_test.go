package tag_seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLength(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		err  error
	}{
		{"10", 10, nil},
		{" 42 ", 42, nil},
		{"1", 1, nil},
		{"0", 0, ErrLengthNotPositive},
		{"-3", 0, ErrLengthNotPositive},
		{"abc", 0, ErrLengthNotInteger},
		{"4.5", 0, ErrLengthNotInteger},
		{"", 0, ErrLengthNotInteger},
	}
	for _, tt := range tests {
		got, err := ValidateLength(tt.raw)
		if tt.err != nil {
			require.ErrorIs(t, err, tt.err, "input %q", tt.raw)
			continue
		}
		require.NoError(t, err, "input %q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestValidateID(t *testing.T) {
	id, err := ValidateID("  seq_01 ")
	require.NoError(t, err)
	assert.Equal(t, "seq_01", id)

	_, err = ValidateID("   ")
	assert.ErrorIs(t, err, ErrEmptyID)

	for _, bad := range []string{"a/b", `a\b`, "..", "."} {
		_, err = ValidateID(bad)
		assert.ErrorIs(t, err, ErrPathInID, "input %q", bad)
	}

	for _, bad := range []string{"seq 1", "seq\t1"} {
		_, err = ValidateID(bad)
		assert.ErrorIs(t, err, ErrSpaceInID, "input %q", bad)
	}
}

func TestValidateLabel(t *testing.T) {
	label, err := ValidateLabel(" Ada ")
	require.NoError(t, err)
	assert.Equal(t, "Ada", label)

	_, err = ValidateLabel("\t")
	assert.ErrorIs(t, err, ErrEmptyLabel)

	label, err = ValidateLabel("Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", label)

	for _, bad := range []string{">Ada", "A>da", "Ada\nBo", "Ada\rBo"} {
		_, err = ValidateLabel(bad)
		assert.ErrorIs(t, err, ErrLabelMarker, "input %q", bad)
	}
}
