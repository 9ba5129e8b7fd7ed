// Package config loads and saves the finsim TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"

	"github.com/theirongolddev/finsim/internal/model"
)

// Config holds all finsim configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Sliders    SlidersConfig    `toml:"sliders"`
	Appearance AppearanceConfig `toml:"appearance"`
	Journal    JournalConfig    `toml:"journal"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultProfile string `toml:"default_profile,omitempty"`
	Chart          string `toml:"chart"`
}

// SlidersConfig holds the range and starting value of each input.
type SlidersConfig struct {
	Revenue    SliderConfig `toml:"revenue"`
	Expenses   SliderConfig `toml:"expenses"`
	Students   SliderConfig `toml:"students"`
	Investment SliderConfig `toml:"investment"`
}

// SliderConfig is one input's bounds, step and initial value.
type SliderConfig struct {
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
	Step    float64 `toml:"step"`
	Initial float64 `toml:"initial"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// JournalConfig controls the local snapshot journal.
type JournalConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// envOverrides are read from FINSIM_* variables and win over the file.
type envOverrides struct {
	Theme       string `env:"THEME"`
	Profile     string `env:"PROFILE"`
	Chart       string `env:"CHART"`
	JournalPath string `env:"JOURNAL_PATH"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFile     string `env:"LOG_FILE"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "FINSIM_"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Chart: "pie",
		},
		Sliders: SlidersConfig{
			Revenue:    SliderConfig{Min: 0, Max: 500000, Step: 1000, Initial: 100000},
			Expenses:   SliderConfig{Min: 0, Max: 500000, Step: 1000, Initial: 70000},
			Students:   SliderConfig{Min: 0, Max: 500, Step: 1, Initial: 50},
			Investment: SliderConfig{Min: 0, Max: 100000, Step: 1000, Initial: 0},
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finsim")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory used for the journal.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "finsim")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "finsim")
}

// JournalPath returns the configured journal database path, or the default
// location under DataDir.
func (c Config) JournalPath() string {
	if c.Journal.Path != "" {
		return c.Journal.Path
	}
	return filepath.Join(DataDir(), "journal.db")
}

// Load reads the config file, returning defaults if it doesn't exist, then
// applies FINSIM_* environment overrides.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile reads the config file without environment overrides, returning
// defaults if it doesn't exist.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	if o.Theme != "" {
		cfg.Appearance.Theme = o.Theme
	}
	if o.Profile != "" {
		cfg.General.DefaultProfile = o.Profile
	}
	if o.Chart != "" {
		cfg.General.Chart = o.Chart
	}
	if o.JournalPath != "" {
		cfg.Journal.Path = o.JournalPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	return nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Update applies edit to the config as stored on disk and saves the result.
// Environment and flag overrides of the running process are not written back.
func Update(edit func(*Config)) error {
	cfg, err := LoadFile()
	if err != nil {
		return err
	}
	edit(&cfg)
	return Save(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// Validate checks slider ranges and enum-valued settings.
func (c Config) Validate() error {
	var errs []error
	for _, s := range []struct {
		name string
		cfg  SliderConfig
	}{
		{"revenue", c.Sliders.Revenue},
		{"expenses", c.Sliders.Expenses},
		{"students", c.Sliders.Students},
		{"investment", c.Sliders.Investment},
	} {
		if err := s.cfg.validate(); err != nil {
			errs = append(errs, fmt.Errorf("sliders.%s: %w", s.name, err))
		}
	}
	if _, err := model.ParseChartKind(c.General.Chart); err != nil {
		errs = append(errs, fmt.Errorf("general.chart: %w", err))
	}
	if c.General.DefaultProfile != "" {
		if _, err := model.ParseProfile(c.General.DefaultProfile); err != nil {
			errs = append(errs, fmt.Errorf("general.default_profile: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (s SliderConfig) validate() error {
	switch {
	case s.Min < 0:
		return fmt.Errorf("min %v is negative", s.Min)
	case s.Max < s.Min:
		return fmt.Errorf("max %v is below min %v", s.Max, s.Min)
	case s.Step <= 0:
		return fmt.Errorf("step %v must be positive", s.Step)
	case s.Initial < s.Min || s.Initial > s.Max:
		return fmt.Errorf("initial %v is outside [%v, %v]", s.Initial, s.Min, s.Max)
	}
	return nil
}

func (s SliderConfig) rng() model.Range {
	return model.Range{Min: s.Min, Max: s.Max, Step: s.Step}
}

// Ranges returns the slider ranges.
func (c Config) Ranges() model.Ranges {
	return model.Ranges{
		Revenue:    c.Sliders.Revenue.rng(),
		Expenses:   c.Sliders.Expenses.rng(),
		Students:   c.Sliders.Students.rng(),
		Investment: c.Sliders.Investment.rng(),
	}
}

// Initial returns the starting inputs, which become the session baseline.
func (c Config) Initial() model.Inputs {
	return model.Inputs{
		Revenue:    c.Sliders.Revenue.Initial,
		Expenses:   c.Sliders.Expenses.Initial,
		Students:   c.Sliders.Students.Initial,
		Investment: c.Sliders.Investment.Initial,
	}
}

// Chart returns the configured default chart, falling back to pie.
func (c Config) Chart() model.ChartKind {
	k, err := model.ParseChartKind(c.General.Chart)
	if err != nil {
		return model.ChartPie
	}
	return k
}

// Profile returns the configured default profile, if any.
func (c Config) Profile() (model.Profile, bool) {
	if c.General.DefaultProfile == "" {
		return 0, false
	}
	p, err := model.ParseProfile(c.General.DefaultProfile)
	if err != nil {
		return 0, false
	}
	return p, true
}
