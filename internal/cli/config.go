package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/graphtint/graphtint/pkg/pipeline"
)

// Config holds user preferences loaded from ~/.config/graphtint/config.toml.
// Every field is optional; zero values fall back to pipeline defaults, so a
// missing or partial config file is never an error.
//
// Example config:
//
//	kind = "random"
//	n = 25
//	p = 0.3
//	strategy = "saturation"
//
//	[serve]
//	addr = ":8421"
//	cache = "redis"
//	redis_url = "redis://localhost:6379/0"
type Config struct {
	Kind     string  `toml:"kind"`
	N        int     `toml:"n"`
	P        float64 `toml:"p"`
	Seed     int64   `toml:"seed"`
	Strategy string  `toml:"strategy"`
	Mode     string  `toml:"mode"`

	Serve ServeConfig `toml:"serve"`
}

// ServeConfig holds the serve command's settings.
type ServeConfig struct {
	Addr     string `toml:"addr"`
	Cache    string `toml:"cache"` // file, redis, mongo, none
	RedisURL string `toml:"redis_url"`
	MongoURI string `toml:"mongo_uri"`
	MongoDB  string `toml:"mongo_db"`
}

// LoadConfig reads the user config file, returning defaults when it does not
// exist or cannot be parsed. Config problems never block the CLI.
func LoadConfig() *Config {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	// A broken config falls back to defaults silently; the file is inspectable
	// with any TOML linter.
	_ = toml.Unmarshal(data, cfg)
	cfg.fillDefaults()
	return cfg
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.fillDefaults()
	return cfg
}

func (c *Config) fillDefaults() {
	if c.Kind == "" {
		c.Kind = pipeline.DefaultKind
	}
	if c.N == 0 {
		c.N = pipeline.DefaultN
	}
	if c.P == 0 {
		c.P = pipeline.DefaultP
	}
	if c.Seed == 0 {
		c.Seed = pipeline.DefaultSeed
	}
	if c.Strategy == "" {
		c.Strategy = pipeline.DefaultStrategy
	}
	if c.Mode == "" {
		c.Mode = pipeline.DefaultMode
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = ":8421"
	}
	if c.Serve.Cache == "" {
		c.Serve.Cache = "file"
	}
	if c.Serve.MongoDB == "" {
		c.Serve.MongoDB = appName
	}
}

// Options builds pipeline options seeded from the config.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		Kind:     c.Kind,
		N:        c.N,
		P:        c.P,
		Seed:     c.Seed,
		Strategy: c.Strategy,
		Mode:     c.Mode,
	}
}
