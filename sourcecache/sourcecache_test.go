package sourcecache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAppendsTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.zx")
	require.NoError(t, os.WriteFile(path, []byte("x := 1"), 0644))

	c := New()
	text, err := c.Register(path)
	require.Nil(t, err)
	require.Equal(t, "x := 1\n", text)
}

func TestRegisterIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.zx")
	require.NoError(t, os.WriteFile(path, []byte("x := 1\n"), 0644))

	c := New()
	first, err := c.Register(path)
	require.Nil(t, err)

	require.NoError(t, os.WriteFile(path, []byte("y := 2\n"), 0644))
	second, err := c.Register(path)
	require.Nil(t, err)
	require.Equal(t, first, second)
}

func TestRegisterMissingFile(t *testing.T) {
	c := New()
	_, err := c.Register(filepath.Join(t.TempDir(), "missing.zx"))
	require.NotNil(t, err)
	require.Equal(t, "1.0", err.Code)
}

func TestRegisterDirectory(t *testing.T) {
	c := New()
	_, err := c.Register(t.TempDir())
	require.NotNil(t, err)
	require.Equal(t, "1.2", err.Code)
}

func TestGetBeforeRegister(t *testing.T) {
	c := New()
	_, ok := c.Get("nope.zx")
	require.False(t, ok)
}
