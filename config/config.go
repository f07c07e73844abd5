// Package config loads the snek settings from defaults, an optional YAML
// file and SNEK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/brensch/snekcore/game"
	"github.com/brensch/snekcore/logging"
)

const EnvPrefix = "SNEK"

type Config struct {
	Rows     int           `mapstructure:"rows"`
	Cols     int           `mapstructure:"cols"`
	Tick     time.Duration `mapstructure:"tick"`
	Walls    string        `mapstructure:"walls"`
	Seed     int64         `mapstructure:"seed"`
	Autoplay bool          `mapstructure:"autoplay"`
	Log      LogConfig     `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Rows:  20,
		Cols:  30,
		Tick:  120 * time.Millisecond,
		Walls: game.WallsKill.String(),
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatPretty,
			File:   "snek.log",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("rows", d.Rows)
	v.SetDefault("cols", d.Cols)
	v.SetDefault("tick", d.Tick)
	v.SetDefault("walls", d.Walls)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("autoplay", d.Autoplay)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
}

// Load reads the config file at path, if path is not empty, and applies
// environment overrides such as SNEK_ROWS or SNEK_LOG_LEVEL.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board must be positive, got %dx%d", c.Rows, c.Cols))
	}
	if c.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick must be positive, got %s", c.Tick))
	}
	if _, err := game.ParseWallPolicy(c.Walls); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != logging.FormatPretty && c.Log.Format != logging.FormatText {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WallPolicy returns the parsed Walls setting. Call Validate first.
func (c *Config) WallPolicy() game.WallPolicy {
	p, _ := game.ParseWallPolicy(c.Walls)
	return p
}
