package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteRange(t *testing.T) {
	off, n, partial, err := parseByteRange("")
	require.NoError(t, err)
	assert.Equal(t, int64(0), off)
	assert.Equal(t, int64(-1), n)
	assert.False(t, partial)

	off, n, partial, err = parseByteRange("bytes=0-99")
	require.NoError(t, err)
	assert.Equal(t, int64(0), off)
	assert.Equal(t, int64(100), n)
	assert.True(t, partial)

	off, n, _, err = parseByteRange("bytes=500-")
	require.NoError(t, err)
	assert.Equal(t, int64(500), off)
	assert.Equal(t, int64(-1), n)
}

func TestParseByteRange_NoSoportados(t *testing.T) {
	for _, h := range []string{"bytes=-100", "bytes=0-1,5-6", "items=0-1", "bytes=9-3", "bytes=a-b"} {
		_, _, _, err := parseByteRange(h)
		assert.Error(t, err, h)
	}
}
