// Package cache persists the last selected table cell between runs.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/henri123lemoine/periodic/internal/grid"
)

// Cursor is the cached selection.
type Cursor struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Symbol    string    `json:"symbol"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Position returns the cached grid position.
func (c Cursor) Position() grid.Position {
	return grid.Position{Row: c.Row, Col: c.Col}
}

// CursorPath returns the cache file path.
func CursorPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "periodic", "cursor.json")
}

// LoadCursor reads the cached cursor. Returns nil if there is none or it
// cannot be read.
func LoadCursor(path string) *Cursor {
	// Shared lock; blocks while a writer holds the exclusive lock.
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil
	}
	return &c
}

// SaveCursor writes the cursor atomically under an exclusive lock.
func SaveCursor(path string, pos grid.Position, symbol string) error {
	data, err := json.Marshal(Cursor{
		Row:       pos.Row,
		Col:       pos.Col,
		Symbol:    symbol,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// Restore returns the cached cell in g. A symbol that has moved is looked up
// by name; a symbol no longer in g is not restored.
func Restore(path string, g *grid.Model) (grid.Position, bool) {
	c := LoadCursor(path)
	if c == nil {
		return grid.Position{}, false
	}
	pos := c.Position()
	if sym, ok := g.EntityAt(pos); ok && sym == c.Symbol {
		return pos, true
	}
	return g.Find(c.Symbol)
}
