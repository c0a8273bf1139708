// Package cache keeps raw API responses on disk for a limited time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/log"
	"github.com/spf13/afero"
)

// Cache stores JSON documents as files named after the hash of their key.
type Cache struct {
	dir string
	ttl time.Duration
}

// New returns a cache rooted at dir whose entries expire after ttl.
func New(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl}
}

// Key derives a file name from an arbitrary key such as a request URL.
func Key(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, Key(key)+".json")
}

// Read decodes the entry for key into target. It reports false on a miss, an expired entry or a decode error.
func (c *Cache) Read(key string, target any) bool {
	fs := filesystem.API()
	path := c.path(key)

	info, err := fs.Stat(path)
	if err != nil || time.Since(info.ModTime()) > c.ttl {
		return false
	}

	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(target); err != nil {
		log.Warnf("cache: discarding unreadable entry %s: %v", path, err)
		return false
	}
	return true
}

// Write stores data under key, writing to a temporary file first and renaming it into place.
func (c *Cache) Write(key string, data any) error {
	fs := filesystem.API()
	if err := fs.MkdirAll(c.dir, os.ModePerm); err != nil {
		return err
	}

	path := c.path(key)
	tmp := path + ".tmp"

	f, err := fs.Create(tmp)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(f).Encode(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return fs.Rename(tmp, path)
}

// CollectGarbage removes expired entries and returns how many were deleted.
func (c *Cache) CollectGarbage() int {
	fs := filesystem.API()
	var removed int

	_ = afero.Walk(fs, c.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > c.ttl && fs.Remove(path) == nil {
			removed++
		}
		return nil
	})

	return removed
}
