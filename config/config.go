package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync/atomic"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// config represents a full configuration file of this project, each command
// shares the same configuration file
type config struct {
	// UserAgent to use when making HTTP requests
	UserAgent string
	// Providers selects the implementation used for interfaces
	Providers providers
	// Database contains the configuration to connect to the SQL database
	Database database
	// Scraper contains the configuration for the playlist scraper
	Scraper scraper
	// LastFM contains the configuration for genre lookups
	LastFM lastfm
	// Metrics contains the configuration for pushing metrics
	Metrics metrics
	// Telemetry contains the configuration for exporting traces
	Telemetry telemetry
}

type providers struct {
	// Storage is the name of the storage provider to use
	Storage string
	// Genre is the name of the genre lookup provider to use
	Genre string
}

// database is the configuration for the database/sql package
type database struct {
	// DriverName to pass to database/sql
	DriverName string
	// DSN to pass to database/sql, format depends on driver used
	DSN string
}

// scraper contains all the fields only relevant to the playlist scraper
type scraper struct {
	// Endpoint is the URL of the playlist search form
	Endpoint URL
	// Delay is the minimum time between two requests to the endpoint
	Delay Duration
	// Timeout is the timeout of a single request
	Timeout Duration
	// MaxRetries is the amount of times a failed request is retried,
	// zero disables retries
	MaxRetries uint64
	// Location is the timezone of the station, times on the playlist
	// are interpreted in this location
	Location string
}

// Loc returns the location configured, or time.Local if it can't be loaded
func (s scraper) Loc() *time.Location {
	if s.Location == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

// lastfm contains all the fields relevant to the genre enricher
type lastfm struct {
	// Endpoint is the base URL of the API
	Endpoint URL
	// APIKey is the key used to authenticate, can also be set with the
	// LASTFM_API_KEY environment variable
	APIKey string
	// Delay is the minimum time between two API requests
	Delay Duration
	// Timeout is the timeout of a single request
	Timeout Duration
	// NotFoundLog is the file that tracks without tags are written to,
	// empty disables it
	NotFoundLog string
}

type metrics struct {
	// PushgatewayURL is the prometheus pushgateway to push to after a
	// job finishes, empty disables pushing
	PushgatewayURL string
	// Job is the job label used when pushing
	Job string
}

type telemetry struct {
	// Use enables exporting traces to Endpoint
	Use bool
	// Endpoint is the OTLP gRPC collector address
	Endpoint string
	// Auth is sent as the Authorization header to the collector
	Auth string
}

// Loader is a function that loads a configuration when called
type Loader func() (Config, error)

// Config is a type-safe wrapper around the config type
type Config struct {
	config *atomic.Value
}

// LoadFile loads a configuration file from the first filename given that exists,
// if none exist the default configuration is returned
func LoadFile(filenames ...string) (Config, error) {
	for _, filename := range filenames {
		if filename == "" {
			continue
		}

		f, err := os.Open(filename)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, err
		}
		defer f.Close()

		return Load(f)
	}

	return newConfig(defaultConfig), nil
}

// Load loads a configuration file from the reader given, it expects TOML as input
func Load(r io.Reader) (Config, error) {
	var c = defaultConfig
	m, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, err
	}

	// print out keys that were found but don't have a destination
	undec := m.Undecoded()
	if len(undec) > 0 {
		fmt.Println("config: unknown keys:", undec)
	}

	return newConfig(c), nil
}

// TestConfig returns a Config with the defaults, for use in tests
func TestConfig() Config {
	return newConfig(defaultConfig)
}

func newConfig(c config) Config {
	ac := Config{new(atomic.Value)}
	ac.StoreConf(c)
	return ac
}

// Environment variables that override configuration values
const (
	EnvAPIKey = "LASTFM_API_KEY"
	EnvDSN    = "TRACKLOG_DSN"
)

// ApplyEnv loads a .env file from the working directory if one exists and
// then overrides configuration values with any environment variables set.
// Variables already in the environment take precedence over the .env file.
func ApplyEnv(cfg Config) {
	// a missing .env file is the common case
	_ = godotenv.Load()

	c := cfg.Conf()
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.LastFM.APIKey = key
	}
	if dsn := os.Getenv(EnvDSN); dsn != "" {
		c.Database.DSN = dsn
	}
	cfg.StoreConf(c)
}

// Conf returns the configuration stored inside
//
// NOTE: Conf returns a shallow-copy of the config value stored inside; so do not edit
// any slices or maps that might be inside
func (c Config) Conf() config {
	return c.config.Load().(config)
}

// StoreConf stores the configuration passed
func (c Config) StoreConf(new config) {
	c.config.Store(new)
}

// Save writes the configuration to w in TOML format
func (c Config) Save(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c.Conf())
}

// Value returns a function that returns the value returned by fn when called
// on the current configuration
func Value[T any](cfg Config, fn func(Config) T) func() T {
	return func() T {
		return fn(cfg)
	}
}
