// Package config loads lvmaze settings through viper: built-in defaults,
// then an optional config file, then LVMAZE_* environment variables, then
// bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmaze/maze"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. LVMAZE_WIDTH.
const EnvPrefix = "LVMAZE"

// Keys shared by flags, files and the environment.
const (
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeySeed       = "seed"
	KeyMaxWeight  = "max_weight"
	KeyMaxTicks   = "max_ticks"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyReportFmt  = "report.format"
	KeyTraceSteps = "log.trace_steps"
)

// Config is the resolved configuration of one lvmaze run.
type Config struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Seed      int64  `mapstructure:"seed"`
	MaxWeight int    `mapstructure:"max_weight"`
	MaxTicks  int    `mapstructure:"max_ticks"`
	Log       Log    `mapstructure:"log"`
	Report    Report `mapstructure:"report"`
}

// Log configures the logrus logger.
type Log struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TraceSteps bool   `mapstructure:"trace_steps"`
}

// Report configures run report output.
type Report struct {
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration: a 50×25 maze, weights in
// [0,1000), a random seed, no tick limit, info-level text logs and a
// YAML report.
func Default() Config {
	return Config{
		Width:     50,
		Height:    25,
		Seed:      0,
		MaxWeight: maze.DefaultMaxWeight,
		MaxTicks:  0,
		Log:       Log{Level: "info", Format: "text"},
		Report:    Report{Format: "yaml"},
	}
}

// SetDefaults registers Default() values on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyMaxWeight, d.MaxWeight)
	v.SetDefault(KeyMaxTicks, d.MaxTicks)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyTraceSteps, d.Log.TraceSteps)
	v.SetDefault(KeyReportFmt, d.Report.Format)
}

// BindEnv enables LVMAZE_* overrides on v; nested keys use underscores
// (log.level → LVMAZE_LOG_LEVEL).
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load resolves a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: maze must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.MaxWeight < 1:
		return fmt.Errorf("%w: max_weight must be positive, got %d", ErrInvalidConfig, c.MaxWeight)
	case c.MaxTicks < 0:
		return fmt.Errorf("%w: max_ticks must not be negative, got %d", ErrInvalidConfig, c.MaxTicks)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	switch strings.ToLower(c.Report.Format) {
	case "json", "yaml", "toml":
	default:
		return fmt.Errorf("%w: report.format %q (want json, yaml or toml)", ErrInvalidConfig, c.Report.Format)
	}
	return nil
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
