package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	s, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), s.Path())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetGet(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Set("token_limit", 256))
	assert.Equal(t, 256, s.GetInt("token_limit"))

	require.NoError(t, s.Set("tokenizer", "words"))
	assert.Equal(t, "words", s.GetString("tokenizer"))

	_, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, s.GetInt("missing"))
	assert.Empty(t, s.GetString("missing"))
}

func TestConfigStore_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("min_words", 5))
	require.NoError(t, s.Set("domains.finance", []string{"refund", "invoice"}))
	require.NoError(t, s.Save())

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 5, reloaded.GetInt("min_words"))
	assert.Equal(t, []string{"refund", "invoice"}, reloaded.GetStringSlice("domains.finance"))
}

func TestConfigStore_LoadTOMLTables(t *testing.T) {
	dir := t.TempDir()
	content := `min_words = 4
token_limit = 128

[domains]
finance = ["refund", "payment"]
account = ["login"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	s, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, s.GetInt("min_words"))
	assert.Equal(t, 128, s.GetInt("token_limit"))
	assert.Equal(t, map[string][]string{
		"finance": {"refund", "payment"},
		"account": {"login"},
	}, s.DomainKeywords())
}

func TestConfigStore_DomainKeywords_Empty(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.DomainKeywords())
}

func TestConfigStore_LoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Load())
	assert.Empty(t, s.DomainKeywords())
}
