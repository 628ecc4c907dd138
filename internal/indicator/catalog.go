package indicator

import (
	"fmt"
	"sort"

	"wbexplorer.org/internal/appconf"
)

// Dataset is a loaded indicator together with how the UI presents it.
type Dataset struct {
	Key   string
	Label string
	Unit  string
	Path  string
	Table *Table
}

// AxisLabel is the y-axis caption, e.g. "Birth Rate (per 1,000 people)".
func (d *Dataset) AxisLabel() string {
	if d.Unit == "" {
		return d.Label
	}
	return fmt.Sprintf("%s (%s)", d.Label, d.Unit)
}

// Catalog is the fixed set of datasets the application serves.
type Catalog struct {
	datasets  []*Dataset
	byKey     map[string]*Dataset
	countries []string
}

// NewCatalog loads every configured dataset through the cache. Any failure is returned
// as is; callers treat it as fatal.
func NewCatalog(cache *Cache, configs []appconf.DatasetConfig) (*Catalog, error) {
	datasets := make([]*Dataset, 0, len(configs))
	for _, cfg := range configs {
		table, err := cache.Load(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("loading dataset %q: %w", cfg.Key, err)
		}
		datasets = append(datasets, &Dataset{
			Key:   cfg.Key,
			Label: cfg.Label,
			Unit:  cfg.Unit,
			Path:  cfg.Path,
			Table: table,
		})
	}
	return NewCatalogFromDatasets(datasets...), nil
}

// NewCatalogFromDatasets assembles a catalog from tables that are already loaded.
func NewCatalogFromDatasets(datasets ...*Dataset) *Catalog {
	c := &Catalog{
		datasets: datasets,
		byKey:    make(map[string]*Dataset, len(datasets)),
	}

	seen := make(map[string]bool)
	for _, ds := range datasets {
		c.byKey[ds.Key] = ds
		for _, name := range ds.Table.countries {
			if !seen[name] {
				seen[name] = true
				c.countries = append(c.countries, name)
			}
		}
	}
	sort.Strings(c.countries)
	return c
}

func (c *Catalog) Get(key string) (*Dataset, bool) {
	ds, ok := c.byKey[key]
	return ds, ok
}

// Datasets returns the datasets in configuration order.
func (c *Catalog) Datasets() []*Dataset {
	out := make([]*Dataset, len(c.datasets))
	copy(out, c.datasets)
	return out
}

func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.datasets))
	for _, ds := range c.datasets {
		keys = append(keys, ds.Key)
	}
	return keys
}

// Countries is the sorted union of country names across all datasets.
func (c *Catalog) Countries() []string {
	out := make([]string, len(c.countries))
	copy(out, c.countries)
	return out
}
