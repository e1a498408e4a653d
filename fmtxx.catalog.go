package fmtxx

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Entry is a named template kept in a Catalog.
type Entry struct {
	// Name is the lookup key.
	Name string `yaml:"name" json:"name"`

	// Dialect selects the interpreter. Empty means DialectBrace.
	Dialect Dialect `yaml:"dialect" json:"dialect"`

	// Template is the template source.
	Template string `yaml:"template" json:"template"`

	// Description is free text for humans.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// UpdatedAt is set by the catalog on Put.
	UpdatedAt time.Time `yaml:"updated_at" json:"updated_at"`
}

// Catalog stores named templates outside code.
// Implementations must be safe for concurrent use.
type Catalog interface {
	// Get returns the entry called name.
	// Returns an error wrapping ErrEntryNotFound if there is none.
	Get(ctx context.Context, name string) (*Entry, error)

	// Put validates and stores an entry, replacing any entry of the same name.
	// Returns an error wrapping ErrInvalidEntry for an entry that fails validation.
	Put(ctx context.Context, entry *Entry) error

	// Delete removes the entry called name.
	// Returns an error wrapping ErrEntryNotFound if there is none.
	Delete(ctx context.Context, name string) error

	// List returns all entries ordered by name.
	List(ctx context.Context) ([]*Entry, error)

	// Close releases any resources held by the catalog.
	// After Close every method returns an error wrapping ErrCatalogClosed.
	Close() error
}

// CatalogDriver is a factory for catalogs. Drivers register themselves during init().
type CatalogDriver interface {
	// Open creates a catalog from a driver-specific connection string.
	Open(connectionString string, logger *zap.Logger) (Catalog, error)
}

// Catalog driver registry
var (
	catalogDriversMu sync.RWMutex
	catalogDrivers   = make(map[string]CatalogDriver)
)

// RegisterCatalogDriver registers a catalog driver by name.
// Panics if driver is nil or the name is taken.
func RegisterCatalogDriver(name string, driver CatalogDriver) {
	catalogDriversMu.Lock()
	defer catalogDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilCatalogDriver)
	}
	if _, exists := catalogDrivers[name]; exists {
		panic(ErrMsgDriverAlreadyRegistered + ": " + name)
	}
	catalogDrivers[name] = driver
}

// OpenCatalog opens a catalog using the named driver.
//
// Example:
//
//	catalog, err := fmtxx.OpenCatalog("memory", "", nil)
//	catalog, err := fmtxx.OpenCatalog("file", "/etc/app/templates.yaml", logger)
func OpenCatalog(driverName, connectionString string, logger *zap.Logger) (Catalog, error) {
	catalogDriversMu.RLock()
	driver, ok := catalogDrivers[driverName]
	catalogDriversMu.RUnlock()

	if !ok {
		return nil, NewUnknownDriverError(driverName)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	catalog, err := driver.Open(connectionString, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug(LogMsgCatalogOpened, zap.String(LogFieldDriver, driverName))
	return catalog, nil
}

// ListCatalogDrivers returns the names of all registered catalog drivers, sorted.
func ListCatalogDrivers() []string {
	catalogDriversMu.RLock()
	defer catalogDriversMu.RUnlock()

	names := make([]string, 0, len(catalogDrivers))
	for name := range catalogDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render looks up name in catalog and formats the entry with its dialect.
func (e *Engine) Render(ctx context.Context, w Writer, catalog Catalog, name string, args ...Arg) error {
	entry, err := catalog.Get(ctx, name)
	if err != nil {
		return err
	}
	return e.Execute(w, entry.Dialect, entry.Template, args...)
}

// normalizeEntry validates entry and returns a copy with defaults filled in.
// The caller's entry is left untouched. It is shared by all catalog
// implementations.
func normalizeEntry(entry *Entry, now time.Time) (*Entry, error) {
	if entry == nil {
		return nil, NewInvalidEntryError("", ErrMsgInvalidEntry, nil)
	}
	if entry.Name == "" {
		return nil, NewInvalidEntryError(entry.Name, ErrMsgEmptyEntryName, nil)
	}
	normalized := copyEntry(entry)
	if normalized.Dialect == "" {
		normalized.Dialect = DialectBrace
	}
	if _, err := ParseDialect(normalized.Dialect.String()); err != nil {
		return nil, NewInvalidEntryError(entry.Name, ErrMsgUnknownDialect, err)
	}
	if err := Validate(normalized.Dialect, normalized.Template); err != nil {
		return nil, NewInvalidEntryError(entry.Name, ErrMsgMalformedTemplate, err)
	}
	normalized.UpdatedAt = now.UTC()
	return normalized, nil
}

// copyEntry returns a copy so callers cannot mutate stored entries.
func copyEntry(entry *Entry) *Entry {
	if entry == nil {
		return nil
	}
	c := *entry
	return &c
}

// sortEntries orders entries by name.
func sortEntries(entries []*Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
