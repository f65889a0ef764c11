// Package sourcecache implements the process-wide source-text cache
// spec.md §5 requires: "a mapping from file path to immutable text;
// entries may be added but never mutated, and lookups are safe for
// repeated access. Register-then-read is the only ordering requirement."
//
// spec.md §1/§6 name the cache only as an interface the real CLI/REPL
// collaborator addresses, so this package stays narrow: Register reads a
// path once and freezes its text, Get returns what was frozen. There is
// no teacher equivalent — GoMix's file/file.go wraps a live, mutable
// *os.File handle for stateful read/write/seek, the opposite shape of an
// immutable whole-file cache — so this is grounded directly on spec.md
// §5's own wording, generalizing file.go's single-purpose os.ReadFile
// call into a register-then-read cache instead.
package sourcecache

import (
	"os"
	"sync"

	"github.com/zyxt-lang/zyxt/zerr"
)

// Cache maps file path to its frozen text. The zero value is usable.
type Cache struct {
	mu    sync.RWMutex
	texts map[string]string
}

// New builds an empty Cache.
func New() *Cache {
	return &Cache{texts: map[string]string{}}
}

var (
	globalOnce sync.Once
	global     *Cache
)

// Global returns the process-wide Cache, built on first access (spec.md
// §5's "process-wide" cache, the source-text counterpart of
// primitive.Global's lazily-built registry).
func Global() *Cache {
	globalOnce.Do(func() { global = New() })
	return global
}

// Register reads path from disk, appends a trailing newline if one is not
// already present (spec.md §6, "a trailing newline is appended internally
// to simplify lexing"), freezes the result under path, and returns it.
// Re-registering an already-cached path returns the frozen text unchanged
// without touching disk again.
func (c *Cache) Register(path string) (string, *zerr.Error) {
	if text, ok := c.Get(path); ok {
		return text, nil
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return "", zerr.FileNotFound(path)
	}
	if info.IsDir() {
		return "", zerr.FileIsDirectory(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.FileNotOpenable(path, err)
	}
	text := string(raw)
	if len(text) == 0 || text[len(text)-1] != '\n' {
		text += "\n"
	}

	c.mu.Lock()
	c.texts[path] = text
	c.mu.Unlock()
	return text, nil
}

// Get returns the previously-registered text for path, if any.
func (c *Cache) Get(path string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.texts[path]
	return text, ok
}
