package config

import (
	"fmt"
	"time"

	"github.com/hance08/wallet/internal/logic/points"
)

type Config struct {
	Snapshot   SnapshotConfig `mapstructure:"snapshot"`
	Season     SeasonConfig   `mapstructure:"season"`
	Display    DisplayConfig  `mapstructure:"display"`
	Clock      ClockConfig    `mapstructure:"clock"`
	Server     ServerConfig   `mapstructure:"server"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type SnapshotConfig struct {
	// Source is a file path or an http(s) URL.
	Source string `mapstructure:"source"`
}

type SeasonConfig struct {
	Start     string             `mapstructure:"start"`
	Overrides map[string]float64 `mapstructure:"overrides"`
}

type DisplayConfig struct {
	Limit    int    `mapstructure:"limit"`
	Timezone string `mapstructure:"timezone"`
}

type ClockConfig struct {
	// Now pins the reference time. Empty means the wall clock.
	Now string `mapstructure:"now"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const (
	DefaultSource = "data.json"
	DefaultLimit  = 10
	DefaultAddr   = ":8080"
)

func NewDefault() *Config {
	return &Config{
		Snapshot: SnapshotConfig{Source: DefaultSource},
		Season: SeasonConfig{
			Start:     points.DefaultSeasonStart.Format(points.DateLayout),
			Overrides: copyOverrides(points.DefaultOverrides),
		},
		Display: DisplayConfig{Limit: DefaultLimit, Timezone: "UTC"},
		Server:  ServerConfig{Addr: DefaultAddr},
		Log:     LogConfig{Level: "info"},
	}
}

// Defaults lists every key with its default value, for registering with a
// config loader.
func Defaults() map[string]any {
	d := NewDefault()
	overrides := make(map[string]any, len(d.Season.Overrides))
	for k, v := range d.Season.Overrides {
		overrides[k] = v
	}

	return map[string]any{
		"snapshot.source":  d.Snapshot.Source,
		"season.start":     d.Season.Start,
		"season.overrides": overrides,
		"display.limit":    d.Display.Limit,
		"display.timezone": d.Display.Timezone,
		"clock.now":        d.Clock.Now,
		"server.addr":      d.Server.Addr,
		"log.level":        d.Log.Level,
	}
}

func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid display.timezone %q: %w", c.Display.Timezone, err)
	}
	return loc, nil
}

// Now returns the pinned clock.now when set, otherwise the wall clock, in the
// display location.
func (c *Config) Now() (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	if c.Clock.Now == "" {
		return time.Now().In(loc), nil
	}
	t, err := ParseTime(c.Clock.Now, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock.now: %w", err)
	}
	return t, nil
}

// SeasonStart is midnight of season.start in the display location.
func (c *Config) SeasonStart() (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}

	start := c.Season.Start
	if start == "" {
		start = points.DefaultSeasonStart.Format(points.DateLayout)
	}
	t, err := time.ParseInLocation(points.DateLayout, start, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid season.start %q: %w", c.Season.Start, err)
	}
	return t, nil
}

func (c *Config) Limit() int {
	if c.Display.Limit <= 0 {
		return DefaultLimit
	}
	return c.Display.Limit
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime accepts RFC 3339 timestamps and the zone-less ISO forms; the
// latter are read in loc.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

func copyOverrides(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
