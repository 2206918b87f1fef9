// Package config loads settings from a YAML file, NIGHTSKY_* environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/litescript/ls-nightsky/internal/ephem"
	"github.com/litescript/ls-nightsky/internal/logging"
	"github.com/litescript/ls-nightsky/internal/site"
)

// Setting keys.
const (
	KeySite     = "site"
	KeyCatalog  = "catalog"
	KeyLogLevel = "log_level"
	KeyColor    = "color"
	KeyRefresh  = "refresh"
	KeySidereal = "sidereal"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. NIGHTSKY_SITE.
	EnvPrefix = "NIGHTSKY"

	// FileName is the config file searched for in the home directory.
	FileName = ".ls-nightsky"

	DefaultRefresh = 5 * time.Second
	MinRefresh     = 1 * time.Second
	MaxRefresh     = 5 * time.Minute
)

// ErrInvalid is returned for settings with unusable values.
var ErrInvalid = errors.New("invalid configuration")

// ColorMode controls styled output.
type ColorMode int

const (
	ColorAuto ColorMode = iota // color when stdout is a terminal
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("%w: color %q", ErrInvalid, s)
	}
}

// Config is the resolved application configuration.
type Config struct {
	Site     string
	Catalog  string
	LogLevel logging.Level
	Color    ColorMode
	Refresh  time.Duration
	Sidereal ephem.SiderealMode
	File     string // config file used, if any
}

// New returns a viper instance with defaults and environment overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySite, site.DefaultCode)
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyRefresh, DefaultRefresh)
	v.SetDefault(KeySidereal, "apparent")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, or $HOME/.ls-nightsky.yaml when path
// is empty, and resolves every setting. A missing default file is not an
// error; a missing explicit file is.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	color, err := ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Site:     strings.TrimSpace(v.GetString(KeySite)),
		Catalog:  v.GetString(KeyCatalog),
		LogLevel: logging.ParseLevel(v.GetString(KeyLogLevel)),
		Color:    color,
		Refresh:  clampRefresh(v.GetDuration(KeyRefresh)),
		Sidereal: ephem.ParseSiderealMode(v.GetString(KeySidereal)),
		File:     v.ConfigFileUsed(),
	}, nil
}

func clampRefresh(d time.Duration) time.Duration {
	switch {
	case d <= 0:
		return DefaultRefresh
	case d < MinRefresh:
		return MinRefresh
	case d > MaxRefresh:
		return MaxRefresh
	default:
		return d
	}
}

// Registry loads the site catalog, merging the configured override file.
func (c Config) Registry() (*site.Registry, error) {
	return site.LoadWithOverride(c.Catalog)
}

// Provider returns the ephemeris provider for the configured settings.
func (c Config) Provider() ephem.Provider {
	return ephem.NewMeeusProvider(ephem.WithSiderealMode(c.Sidereal))
}

// Logger returns a logger at the configured level writing to w.
func (c Config) Logger(w io.Writer) *logging.Logger {
	return logging.New(c.LogLevel, logging.WithOutput(w))
}

// UseColor reports whether output should be styled.
func (c Config) UseColor(isTTY bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY
	}
}
