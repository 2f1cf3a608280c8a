package session

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/life-promo/studio-site/internal/store"
)

func TestManagerLifecycle(t *testing.T) {
	s := store.NewMemory()
	m := NewManager(s)

	assert.False(t, m.IsActive(), "fresh store must not be authenticated")

	token, err := m.Activate()
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, m.IsActive())

	// the flag is persisted as a plain literal, not JSON
	raw, err := s.Get(store.KeyAdminSession)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))

	// the token is persisted too, so it survives a restart
	raw, err = s.Get(store.KeyAdminSessionToken)
	require.NoError(t, err)
	assert.Equal(t, token, string(raw))

	require.NoError(t, m.Deactivate())
	assert.False(t, m.IsActive())

	_, err = s.Get(store.KeyAdminSessionToken)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestMatches(t *testing.T) {
	m := NewManager(store.NewMemory())

	assert.False(t, m.Matches("anything"), "no login yet")

	token, err := m.Activate()
	require.NoError(t, err)

	assert.True(t, m.Matches(token))
	assert.False(t, m.Matches("forged-token"))
	assert.False(t, m.Matches(""))

	require.NoError(t, m.Deactivate())
	assert.False(t, m.Matches(token))
}

func TestActivateRotatesToken(t *testing.T) {
	m := NewManager(store.NewMemory())

	first, err := m.Activate()
	require.NoError(t, err)

	second, err := m.Activate()
	require.NoError(t, err)

	assert.False(t, m.Matches(first), "a new login invalidates the old token")
	assert.True(t, m.Matches(second))
}

func TestDeactivateWhenInactive(t *testing.T) {
	m := NewManager(store.NewMemory())

	// already inactive is not an error
	require.NoError(t, m.Deactivate())
}

func TestIsActiveIgnoresForeignValue(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, s.Set(store.KeyAdminSession, []byte("yes")))

	assert.False(t, NewManager(s).IsActive())
}

func TestGenerateToken(t *testing.T) {
	first, err := GenerateToken()
	require.NoError(t, err)

	second, err := GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 64)

	_, err = hex.DecodeString(first)
	require.NoError(t, err)
}
