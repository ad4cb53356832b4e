package pagination

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDToken_RoundTrip(t *testing.T) {
	for _, id := range []int64{1, 10, 987654321} {
		got, err := DecodeIDToken(EncodeIDToken(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestDecodeIDToken_Empty(t *testing.T) {
	id, err := DecodeIDToken("")
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestDecodeIDToken_Invalid(t *testing.T) {
	tests := map[string]string{
		"not base64":   "%%%",
		"wrong prefix": base64.RawURLEncoding.EncodeToString([]byte("ts:12")),
		"not a number": base64.RawURLEncoding.EncodeToString([]byte("id:abc")),
		"negative":     base64.RawURLEncoding.EncodeToString([]byte("id:-4")),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeIDToken(token)
			assert.Error(t, err)
		})
	}
}

func TestNextIDToken(t *testing.T) {
	assert.Empty(t, NextIDToken(3, 10, 42))
	assert.Empty(t, NextIDToken(0, 10, 0))

	token := NextIDToken(10, 10, 42)
	id, err := DecodeIDToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
