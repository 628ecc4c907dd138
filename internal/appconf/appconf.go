package appconf

import (
	"fmt"
	"strings"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment converts the value of the --env flag into an Environment.
// Unknown values fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// DatasetConfig describes one World Bank indicator export the application loads at startup.
type DatasetConfig struct {
	Key   string
	Label string
	Unit  string
	Path  string
}

// CompressionConfig controls gzip compression of JSON, SVG and HTML responses.
type CompressionConfig struct {
	// MinSize is the smallest body in bytes worth compressing.
	MinSize int
	// Level is a compress/gzip level, -3 (stateless) to 9.
	Level int
}

// DefaultCompression suits the mostly small JSON envelopes and multi-kilobyte SVG charts.
func DefaultCompression() CompressionConfig {
	return CompressionConfig{MinSize: 512, Level: 6}
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port             int
	Env              Environment
	Datasets         []DatasetConfig
	DefaultCountries []string
	Compression      CompressionConfig
}

const (
	BirthRateKey   = "birth_rate"
	GDPKey         = "gdp_per_capita"
	FemaleLaborKey = "female_labor"
)

// DefaultDatasets returns the three indicator files shipped next to the binary.
func DefaultDatasets() []DatasetConfig {
	return []DatasetConfig{
		{
			Key:   BirthRateKey,
			Label: "Birth Rate",
			Unit:  "per 1,000 people",
			Path:  "./csv-data/birth_rate_world_bank/API_SP.DYN.CBRT.IN_DS2_en_csv_v2_13718.csv",
		},
		{
			Key:   GDPKey,
			Label: "Real GDP per Capita",
			Unit:  "constant 2015 US$",
			Path:  "./csv-data/gdp_per_capita_world_bank/API_NY.GDP.PCAP.KD_DS2_en_csv_v2.csv",
		},
		{
			Key:   FemaleLaborKey,
			Label: "Female Labor Force Participation",
			Unit:  "% of female population ages 15+",
			Path:  "./csv-data/female_labor_world_bank/API_SL.TLF.CACT.FE.ZS_DS2_en_csv_v2.csv",
		},
	}
}

// DefaultCountries is the preselection shown before the user picks anything.
func DefaultCountries() []string {
	return []string{"Sweden", "Switzerland"}
}

// Validate reports configuration mistakes that would only surface later as confusing runtime errors.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Compression.MinSize < 0 {
		return fmt.Errorf("invalid compression min size %d", c.Compression.MinSize)
	}
	if c.Compression.Level < -3 || c.Compression.Level > 9 {
		return fmt.Errorf("invalid compression level %d", c.Compression.Level)
	}
	if len(c.Datasets) == 0 {
		return fmt.Errorf("at least one dataset must be configured")
	}
	seen := make(map[string]bool, len(c.Datasets))
	for _, ds := range c.Datasets {
		if ds.Key == "" {
			return fmt.Errorf("dataset with path %q has no key", ds.Path)
		}
		if ds.Path == "" {
			return fmt.Errorf("dataset %q has no path", ds.Key)
		}
		if seen[ds.Key] {
			return fmt.Errorf("duplicate dataset key %q", ds.Key)
		}
		seen[ds.Key] = true
	}
	return nil
}
