package appconf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type fileDataset struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Unit  string `yaml:"unit"`
	Path  string `yaml:"path"`
}

type fileCompression struct {
	MinSize *int `yaml:"minSize"`
	Level   *int `yaml:"level"`
}

type fileConfig struct {
	Port             *int            `yaml:"port"`
	Env              string          `yaml:"env"`
	DefaultCountries []string        `yaml:"defaultCountries"`
	Datasets         []fileDataset   `yaml:"datasets"`
	Compression      fileCompression `yaml:"compression"`
}

// LoadFile overlays the YAML file at path on base. Keys missing from the file keep
// their base value; a datasets list replaces the base list entirely. Relative dataset
// paths are resolved against the file's directory.
func LoadFile(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return base, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg := base
	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.Env != "" {
		cfg.Env = EnvFlagToEnvironment(fc.Env)
	}
	if fc.Compression.MinSize != nil {
		cfg.Compression.MinSize = *fc.Compression.MinSize
	}
	if fc.Compression.Level != nil {
		cfg.Compression.Level = *fc.Compression.Level
	}
	if len(fc.DefaultCountries) > 0 {
		cfg.DefaultCountries = fc.DefaultCountries
	}
	if len(fc.Datasets) > 0 {
		dir := filepath.Dir(path)
		cfg.Datasets = make([]DatasetConfig, 0, len(fc.Datasets))
		for _, ds := range fc.Datasets {
			p := ds.Path
			if p != "" && !filepath.IsAbs(p) {
				p = filepath.Join(dir, p)
			}
			cfg.Datasets = append(cfg.Datasets, DatasetConfig{
				Key:   ds.Key,
				Label: ds.Label,
				Unit:  ds.Unit,
				Path:  p,
			})
		}
	}

	return cfg, nil
}
