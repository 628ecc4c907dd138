package indicator

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"wbexplorer.org/internal/logging"
)

// Cache memoizes parsed tables by absolute file path. Source files are read-only for the
// lifetime of the process, so an entry is never invalidated.
type Cache struct {
	opts   LoadOptions
	logger *slog.Logger

	mu     sync.RWMutex
	tables map[string]*Table
	parses int
}

func NewCache(logger *slog.Logger) *Cache {
	opts := DefaultLoadOptions()
	opts.Logger = logger
	return NewCacheWithOptions(opts)
}

func NewCacheWithOptions(opts LoadOptions) *Cache {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		opts:   opts,
		logger: logger,
		tables: make(map[string]*Table),
	}
}

// Load returns the table for path, parsing the file only on first use.
// Failed loads are not remembered.
func (c *Cache) Load(path string) (*Table, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving indicator path %q: %w", path, err)
	}

	c.mu.RLock()
	table, ok := c.tables[abs]
	c.mu.RUnlock()
	if ok {
		c.logger.Debug("indicator cache hit", slog.String("path", abs), slog.String("component", "indicator_cache"))
		return table, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if table, ok := c.tables[abs]; ok {
		return table, nil
	}

	start := time.Now()
	table, err = Load(abs, c.opts)
	if err != nil {
		logging.LogError(c.logger, "failed to load indicator file", err,
			slog.String("path", abs),
			slog.String("component", "indicator_cache"))
		return nil, err
	}
	c.parses++
	c.tables[abs] = table

	logging.LogOperation(c.logger, "indicator_file_loaded",
		slog.String("path", abs),
		slog.String("indicator_code", table.IndicatorCode()),
		slog.Int("rows", table.Len()),
		slog.Int("countries", len(table.countries)),
		logging.Since(start))

	return table, nil
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}

// Parses reports how many files were actually read from disk.
func (c *Cache) Parses() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.parses
}

// Paths returns the cached absolute paths in sorted order.
func (c *Cache) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.tables))
	for p := range c.tables {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
