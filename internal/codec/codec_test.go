package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-promo/studio-site/internal/store"
)

type fixture struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestDecode(t *testing.T) {
	def := fixture{Name: "default", Items: []string{"a"}}

	testCases := []struct {
		name     string
		raw      []byte
		expected fixture
	}{
		{
			name:     "empty input yields default",
			raw:      nil,
			expected: def,
		},
		{
			name:     "malformed input yields default",
			raw:      []byte("{not json"),
			expected: def,
		},
		{
			name:     "valid input decodes",
			raw:      []byte(`{"name":"stored","items":["x","y"]}`),
			expected: fixture{Name: "stored", Items: []string{"x", "y"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Decode(tc.raw, def))
		})
	}
}

func TestDecodeDefaultIsACopy(t *testing.T) {
	def := fixture{Name: "default", Items: []string{"a"}}

	got := Decode(nil, def)
	got.Items[0] = "mutated"

	assert.Equal(t, "a", def.Items[0])
}

func TestClone(t *testing.T) {
	original := fixture{Name: "original", Items: []string{"a", "b"}}

	clone := Clone(original)
	clone.Items[0] = "mutated"

	assert.Equal(t, "a", original.Items[0])
	assert.Equal(t, "original", clone.Name)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	s := store.NewMemory()
	def := fixture{Name: "default"}

	// nothing stored yet, Load yields the default
	assert.Equal(t, def, Load(s, "fixture", def))

	v := fixture{Name: "stored", Items: []string{"x"}}
	require.NoError(t, Save(s, "fixture", v))

	assert.Equal(t, v, Load(s, "fixture", def))
}

func TestLoadCorruptedValueYieldsDefault(t *testing.T) {
	s := store.NewMemory()
	def := fixture{Name: "default"}

	require.NoError(t, s.Set("fixture", []byte("garbage")))

	assert.Equal(t, def, Load(s, "fixture", def))
}
