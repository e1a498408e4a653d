package fmtxx

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MemoryCatalog keeps entries in memory. Everything is lost when the process
// exits; it suits tests and embedded template sets.
type MemoryCatalog struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	closed  bool
	logger  *zap.Logger
	now     func() time.Time
}

// MemoryCatalogDriver opens MemoryCatalog instances.
type MemoryCatalogDriver struct{}

func init() {
	RegisterCatalogDriver(CatalogDriverMemory, &MemoryCatalogDriver{})
}

// Open creates an empty MemoryCatalog. The connection string is ignored.
func (d *MemoryCatalogDriver) Open(connectionString string, logger *zap.Logger) (Catalog, error) {
	return NewMemoryCatalog(logger), nil
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog(logger *zap.Logger) *MemoryCatalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemoryCatalog{
		entries: make(map[string]*Entry),
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns the entry called name.
func (c *MemoryCatalog) Get(ctx context.Context, name string) (*Entry, error) {
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

// Put validates and stores entry.
func (c *MemoryCatalog) Put(ctx context.Context, entry *Entry) error {
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
	c.entries[entry.Name] = entry
	c.logger.Debug(LogMsgCatalogEntrySaved,
		zap.String(LogFieldDriver, CatalogDriverMemory),
		zap.String(LogFieldName, entry.Name))
	return nil
}

// Delete removes the entry called name.
func (c *MemoryCatalog) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return NewCatalogClosedError()
	}
	if _, ok := c.entries[name]; !ok {
		return NewEntryNotFoundError(name)
	}
	delete(c.entries, name)
	c.logger.Debug(LogMsgCatalogDeleted,
		zap.String(LogFieldDriver, CatalogDriverMemory),
		zap.String(LogFieldName, name))
	return nil
}

// List returns all entries ordered by name.
func (c *MemoryCatalog) List(ctx context.Context) ([]*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, NewCatalogClosedError()
	}
	entries := make([]*Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		entries = append(entries, copyEntry(entry))
	}
	sortEntries(entries)
	return entries, nil
}

// Close drops all entries.
func (c *MemoryCatalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.entries = nil
	return nil
}
