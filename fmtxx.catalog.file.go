package fmtxx

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// FileCatalog keeps entries in a single YAML document:
//
//	templates:
//	  - name: greeting
//	    dialect: brace
//	    template: "Hello, {}!"
//	    updated_at: 2026-01-02T15:04:05Z
//
// The file is read once on open and rewritten atomically (temp file and
// rename) on every Put and Delete. Changes made to the file by other
// processes after open are not observed.
type FileCatalog struct {
	mu      sync.RWMutex
	path    string
	entries map[string]*Entry
	closed  bool
	logger  *zap.Logger
	now     func() time.Time
}

// fileCatalogDocument is the on-disk layout.
type fileCatalogDocument struct {
	Templates []*Entry `yaml:"templates"`
}

// FileCatalogDriver opens FileCatalog instances.
type FileCatalogDriver struct{}

func init() {
	RegisterCatalogDriver(CatalogDriverFile, &FileCatalogDriver{})
}

// Open loads the catalog at the path given as the connection string.
func (d *FileCatalogDriver) Open(connectionString string, logger *zap.Logger) (Catalog, error) {
	return NewFileCatalog(connectionString, logger)
}

// NewFileCatalog loads the catalog stored at path. A missing file is an empty
// catalog; it is created by the first Put.
func NewFileCatalog(path string, logger *zap.Logger) (*FileCatalog, error) {
	if path == "" {
		return nil, NewCatalogIOError(CatalogDriverFile, fs.ErrInvalid)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &FileCatalog{
		path:    path,
		entries: make(map[string]*Entry),
		logger:  logger,
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return c, nil
	case err != nil:
		return nil, NewCatalogIOError(CatalogDriverFile, err)
	}

	var doc fileCatalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewCatalogIOError(CatalogDriverFile, err)
	}
	for _, entry := range doc.Templates {
		if entry == nil {
			continue
		}
		if entry.Dialect == "" {
			entry.Dialect = DialectBrace
		}
		c.entries[entry.Name] = entry
	}

	logger.Debug(LogMsgCatalogOpened,
		zap.String(LogFieldDriver, CatalogDriverFile),
		zap.String(LogFieldPath, path))
	return c, nil
}

// Path returns the location of the YAML document.
func (c *FileCatalog) Path() string {
	return c.path
}

// Get returns the entry called name.
func (c *FileCatalog) Get(ctx context.Context, name string) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, NewCatalogClosedError()
	}
	entry, ok := c.entries[name]
	if !ok {
		return nil, NewEntryNotFoundError(name)
	}
	return copyEntry(entry), nil
}

// Put validates entry, stores it and rewrites the file.
func (c *FileCatalog) Put(ctx context.Context, entry *Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entry, err := normalizeEntry(entry, c.now())
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return NewCatalogClosedError()
	}

	previous, existed := c.entries[entry.Name]
	c.entries[entry.Name] = entry
	if err := c.flush(); err != nil {
		if existed {
			c.entries[entry.Name] = previous
		} else {
			delete(c.entries, entry.Name)
		}
		return err
	}

	c.logger.Debug(LogMsgCatalogEntrySaved,
		zap.String(LogFieldDriver, CatalogDriverFile),
		zap.String(LogFieldName, entry.Name),
		zap.String(LogFieldPath, c.path))
	return nil
}

// Delete removes the entry called name and rewrites the file.
func (c *FileCatalog) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return NewCatalogClosedError()
	}
	previous, ok := c.entries[name]
	if !ok {
		return NewEntryNotFoundError(name)
	}
	delete(c.entries, name)
	if err := c.flush(); err != nil {
		c.entries[name] = previous
		return err
	}

	c.logger.Debug(LogMsgCatalogDeleted,
		zap.String(LogFieldDriver, CatalogDriverFile),
		zap.String(LogFieldName, name),
		zap.String(LogFieldPath, c.path))
	return nil
}

// List returns all entries ordered by name.
func (c *FileCatalog) List(ctx context.Context) ([]*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, NewCatalogClosedError()
	}
	return c.sorted(), nil
}

// Close marks the catalog closed. The file is already up to date.
func (c *FileCatalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.entries = nil
	return nil
}

func (c *FileCatalog) sorted() []*Entry {
	entries := make([]*Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		entries = append(entries, copyEntry(entry))
	}
	sortEntries(entries)
	return entries
}

// flush writes the document next to the target and renames it into place.
// Caller must hold the write lock.
func (c *FileCatalog) flush() error {
	data, err := yaml.Marshal(&fileCatalogDocument{Templates: c.sorted()})
	if err != nil {
		return NewCatalogIOError(CatalogDriverFile, err)
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, FileCatalogDirPerm); err != nil {
		return NewCatalogIOError(CatalogDriverFile, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return NewCatalogIOError(CatalogDriverFile, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return NewCatalogIOError(CatalogDriverFile, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return NewCatalogIOError(CatalogDriverFile, err)
	}
	if err := os.Chmod(tmpName, FileCatalogPerm); err != nil {
		_ = os.Remove(tmpName)
		return NewCatalogIOError(CatalogDriverFile, err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return NewCatalogIOError(CatalogDriverFile, err)
	}
	return nil
}
