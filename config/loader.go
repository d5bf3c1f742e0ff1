package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metroroute/dataset"
	"github.com/katalvlaran/metroroute/geo"
	"github.com/katalvlaran/metroroute/transit"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads the YAML file at path, fills defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML into cfg, rejecting unknown keys.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LoadDotEnv loads KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: loading %s: %w", p, err)
		}
	}

	return nil
}

// Validate checks struct tags and the cross-field rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.RoutingParams(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// RoutingParams converts the routing section into transit.Params.
func (c *Config) RoutingParams() (transit.Params, error) {
	r := c.Routing
	metric, err := geo.ParseMetric(r.Metric, r.EarthRadius)
	if err != nil {
		return transit.Params{}, err
	}
	walker, err := geo.NewWalker(metric, r.WalkSpeed)
	if err != nil {
		return transit.Params{}, err
	}
	p := transit.Params{
		InterStationMinutes: minutesOr(r.InterStationMinutes, transit.DefaultInterStationMinutes),
		TransferMinutes:     minutesOr(r.TransferMinutes, transit.DefaultTransferMinutes),
		ExitMinutes:         minutesOr(r.ExitMinutes, transit.DefaultExitMinutes),
		MaxWalkMinutes:      minutesOr(r.MaxWalkMinutes, transit.DefaultMaxWalkMinutes),
		Walker:              walker,
	}

	return p, p.Validate()
}

// DatasetOptions returns how the dataset file's coordinates are read.
func (c *Config) DatasetOptions() dataset.Options {
	return dataset.Options{
		Coordinates: c.Dataset.Coordinates,
		Width:       c.Dataset.Width,
		Height:      c.Dataset.Height,
	}
}

// Strategy returns the configured isolation strategy.
func (c *Config) Strategy() (transit.Strategy, error) {
	return transit.ParseStrategy(c.Routing.Isolation)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataset); ok && v != "" {
		c.Dataset.Path = v
	}
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}

	d := &c.Dataset
	if d.Path == "" {
		d.Path = DefaultDatasetPath
	}
	if d.Coordinates == "" {
		d.Coordinates = CoordinatesNormalized
	}
	if d.Width == 0 {
		d.Width = DefaultImageWidth
	}
	if d.Height == 0 {
		d.Height = DefaultImageHeight
	}

	r := &c.Routing
	geographic := d.Coordinates == CoordinatesGeographic
	if r.Metric == "" {
		r.Metric = geo.MetricPlanar
		if geographic {
			r.Metric = geo.MetricHaversine
		}
	}
	if r.WalkSpeed == 0 {
		r.WalkSpeed = transit.DefaultWalkSpeed
		if geographic {
			r.WalkSpeed = DefaultGeoWalkSpeed
		}
	}
	defaultMinutes(&r.InterStationMinutes, transit.DefaultInterStationMinutes)
	defaultMinutes(&r.TransferMinutes, transit.DefaultTransferMinutes)
	defaultMinutes(&r.ExitMinutes, transit.DefaultExitMinutes)
	defaultMinutes(&r.MaxWalkMinutes, transit.DefaultMaxWalkMinutes)
	if r.EarthRadius == 0 {
		r.EarthRadius = geo.EarthRadius
	}
	if r.Isolation == "" {
		r.Isolation = transit.StrategyOverlay.String()
	}
	if r.HeuristicCacheSize == 0 {
		r.HeuristicCacheSize = DefaultCacheSize
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// defaultMinutes fills an unset minute constant; an explicit 0 is kept.
func defaultMinutes(v **float64, def float64) {
	if *v == nil {
		*v = &def
	}
}

func minutesOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}

	return *v
}
