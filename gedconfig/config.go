package gedconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds every tunable exposed across the ipfp/multistart/kbest/
// randomwalk components, in the flat mapstructure-tagged shape viper reads
// TOML/YAML/JSON and APP_-prefixed environment variables into.
type Config struct {
	MaxIter     int     `mapstructure:"max_iter"`
	Epsilon     float64 `mapstructure:"epsilon"`
	Parallelism int     `mapstructure:"parallelism"`
	KBest       int     `mapstructure:"k_best"`
	WalkLength  int     `mapstructure:"walk_length"`
	Damping     float64 `mapstructure:"damping"`
	LogLevel    string  `mapstructure:"log_level"`
}

// DefaultConfig mirrors ipfp.DefaultOptions/multistart.DefaultOptions/
// randomwalk.DefaultOptions so an unconfigured gedcore behaves identically
// to calling those constructors directly.
func DefaultConfig() Config {
	return Config{
		MaxIter:     100,
		Epsilon:     1e-3,
		Parallelism: 1,
		KBest:       1,
		WalkLength:  3,
		Damping:     0.5,
		LogLevel:    "info",
	}
}

/*
Load

Description:

	Reads path (any format viper supports: yaml, toml, json, ...) into a
	Config seeded with DefaultConfig's values, then applies APP_-prefixed
	environment variable overrides (APP_MAX_ITER, APP_EPSILON, ...). A
	missing file at path is not an error: defaults and environment
	overrides still apply.
*/
func Load(path string) (Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("max_iter", def.MaxIter)
	v.SetDefault("epsilon", def.Epsilon)
	v.SetDefault("parallelism", def.Parallelism)
	v.SetDefault("k_best", def.KBest)
	v.SetDefault("walk_length", def.WalkLength)
	v.SetDefault("damping", def.Damping)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("gedconfig: read %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("gedconfig: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field is within its accepted range.
func (c Config) Validate() error {
	if c.MaxIter <= 0 || c.Epsilon <= 0 {
		return ErrInvalidConfig
	}
	if c.Parallelism < 0 || c.KBest <= 0 {
		return ErrInvalidConfig
	}
	if c.WalkLength < 1 || c.Damping <= 0 || c.Damping > 1 {
		return ErrInvalidConfig
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

// Logger builds a logrus.Logger at the configured level, for wiring into
// ipfp.Options.Log via logrus.NewEntry.
func (c Config) Logger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
