package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Order
	}{
		{"ijk", IJK},
		{"ikj", IKJ},
		{"jik", JIK},
		{"jki", JKI},
		{"kij", KIJ},
		{"kji", KJI},
		{"IKJ", IKJ}, // case-insensitive
	}

	for _, tt := range tests {
		o, err := ParseOrder(tt.in)
		require.NoError(t, err, "parse %q", tt.in)
		assert.Equal(t, tt.want, o, "parse %q", tt.in)
	}
}

func TestParseOrderInvalid(t *testing.T) {
	for _, in := range []string{"", "ij", "ijkk", "iij", "abc", "ikx"} {
		_, err := ParseOrder(in)
		assert.ErrorIs(t, err, ErrInvalidOrder, "parse %q", in)
	}
}

func TestOrderString(t *testing.T) {
	for _, o := range []Order{IJK, IKJ, JIK, JKI, KIJ, KJI} {
		parsed, err := ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
}
