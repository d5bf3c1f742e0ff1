package config

import (
	"errors"
	"time"

	"github.com/katalvlaran/metroroute/dataset"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Coordinate modes of a dataset file.
const (
	CoordinatesPixel      = dataset.Pixel
	CoordinatesNormalized = dataset.Normalized
	CoordinatesGeographic = dataset.Geographic
)

// Environment variables that override the file.
const (
	EnvDataset  = "METROROUTE_DATASET"
	EnvAddr     = "METROROUTE_ADDR"
	EnvLogLevel = "METROROUTE_LOG_LEVEL"
)

// Defaults.
const (
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultDatasetPath  = "lines.json"
	DefaultImageWidth   = 396
	DefaultImageHeight  = 443
	// DefaultGeoWalkSpeed is used for geographic datasets, in metres per minute.
	DefaultGeoWalkSpeed = 80
	DefaultCacheSize    = 256
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string        `yaml:"addr" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gte=0"`
}

// DatasetConfig locates the line file and says how to read its coordinates.
// Width and Height scale normalized coordinates into map pixels.
type DatasetConfig struct {
	Path        string  `yaml:"path" validate:"required"`
	Coordinates string  `yaml:"coordinates" validate:"oneof=pixel normalized geographic"`
	Width       float64 `yaml:"width" validate:"gt=0"`
	Height      float64 `yaml:"height" validate:"gt=0"`
}

// RoutingConfig holds the routing constants.
type RoutingConfig struct {
	Metric              string        `yaml:"metric" validate:"oneof=planar haversine"`
	WalkSpeed           float64       `yaml:"walk_speed" validate:"gt=0"`
	// The minute constants are pointers so an explicit 0 survives defaulting.
	InterStationMinutes *float64      `yaml:"inter_station_minutes" validate:"omitempty,gte=0"`
	TransferMinutes     *float64      `yaml:"transfer_minutes" validate:"omitempty,gte=0"`
	ExitMinutes         *float64      `yaml:"exit_minutes" validate:"omitempty,gte=0"`
	MaxWalkMinutes      *float64      `yaml:"max_walk_minutes" validate:"omitempty,gte=0"`
	EarthRadius         float64       `yaml:"earth_radius" validate:"gte=0"`
	Isolation           string        `yaml:"isolation" validate:"oneof=overlay copy"`
	HeuristicCacheSize  int           `yaml:"heuristic_cache_size" validate:"gte=0"`
	HeuristicCacheTTL   time.Duration `yaml:"heuristic_cache_ttl" validate:"gte=0"`
}

// LogConfig selects the process logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Routing RoutingConfig `yaml:"routing"`
	Log     LogConfig     `yaml:"log"`
}
