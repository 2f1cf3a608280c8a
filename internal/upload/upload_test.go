package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is the magic prefix of a PNG file, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestDataURI(t *testing.T) {
	uri, err := DataURI(pngHeader)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.True(t, IsDataURI(uri))
}

func TestDataURIRejectsNonImage(t *testing.T) {
	_, err := DataURI([]byte("just some text"))
	require.ErrorIs(t, err, ErrNotAnImage)

	_, err = DataURI(nil)
	require.ErrorIs(t, err, ErrNotAnImage)
}

func TestDataURIRejectsOversizedFile(t *testing.T) {
	oversized := make([]byte, MaxSize+1)
	copy(oversized, pngHeader)

	_, err := DataURI(oversized)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestDataURIAcceptsExactLimit(t *testing.T) {
	data := make([]byte, MaxSize)
	copy(data, pngHeader)

	_, err := DataURI(data)
	require.NoError(t, err)
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, IsDataURI("data:image/png;base64,AAAA"))
	assert.False(t, IsDataURI("👨‍💼"))
	assert.False(t, IsDataURI(""))
}
