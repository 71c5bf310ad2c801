// Package config loads cabinctl settings through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cabinside/cabinctl/internal/anim"
	"github.com/cabinside/cabinctl/internal/dashboard"
)

// FileName is the config file looked up when no explicit path is given.
const FileName = "cabinctl"

// Settings is the resolved configuration.
type Settings struct {
	LogLevel string
	LogFile  string

	Timing anim.Timing
	FPS    int
	Easing string

	ChimeEnabled bool
	ChimeFile    string
	ChimeVolume  float64

	FeedAddr     string
	FeedInterval time.Duration

	Dashboard dashboard.Data
}

// FrameInterval is the time between animation frames.
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", filepath.Join(os.TempDir(), "cabinctl.log"))

	viper.SetDefault("animation.settle", anim.DefaultTiming.Settle.String())
	viper.SetDefault("animation.mainDuration", anim.DefaultTiming.Main.String())
	viper.SetDefault("animation.loopDuration", anim.DefaultTiming.Loop.String())
	viper.SetDefault("animation.fps", 60)
	viper.SetDefault("animation.easing", "cubic")

	viper.SetDefault("chime.enabled", true)
	viper.SetDefault("chime.file", "")
	viper.SetDefault("chime.volume", 0.6)

	viper.SetDefault("feed.addr", "")
	viper.SetDefault("feed.interval", "100ms")

	d := dashboard.Default()
	viper.SetDefault("trains.a.near", d.TrainA.Near.Code)
	viper.SetDefault("trains.b.near", d.TrainB.Near.Code)

	w := d.Weather
	viper.SetDefault("weather.temperature", w.TemperatureC)
	viper.SetDefault("weather.condition", w.Condition)
	viper.SetDefault("weather.humidity", w.HumidityPct)
	viper.SetDefault("weather.wind", w.WindKmh)
}

// Load reads the config file at path, or looks for cabinctl.{json,yaml,toml}
// in the working directory and the user config directory when path is empty.
// A missing file is only an error when path was given explicitly. Environment
// variables prefixed CABINCTL_ override file values.
func Load(path string) error {
	setDefaults()
	viper.SetEnvPrefix("CABINCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName(FileName)
	viper.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "cabinctl"))
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Used returns the config file that was read, or "" when running on defaults.
func Used() string {
	return viper.ConfigFileUsed()
}

// Current resolves and validates the loaded configuration.
func Current() (Settings, error) {
	s := Settings{
		LogLevel: viper.GetString("log.level"),
		LogFile:  viper.GetString("log.file"),
		Timing: anim.Timing{
			Settle: viper.GetDuration("animation.settle"),
			Main:   viper.GetDuration("animation.mainDuration"),
			Loop:   viper.GetDuration("animation.loopDuration"),
		},
		FPS:          viper.GetInt("animation.fps"),
		Easing:       viper.GetString("animation.easing"),
		ChimeEnabled: viper.GetBool("chime.enabled"),
		ChimeFile:    viper.GetString("chime.file"),
		ChimeVolume:  viper.GetFloat64("chime.volume"),
		FeedAddr:     viper.GetString("feed.addr"),
		FeedInterval: viper.GetDuration("feed.interval"),
		Dashboard:    dashboard.Default(),
	}
	s.Dashboard.Weather = dashboard.Weather{
		TemperatureC: viper.GetInt("weather.temperature"),
		Condition:    viper.GetString("weather.condition"),
		HumidityPct:  viper.GetInt("weather.humidity"),
		WindKmh:      viper.GetInt("weather.wind"),
	}
	for _, t := range []struct {
		key   string
		train *dashboard.Train
	}{
		{"trains.a.near", &s.Dashboard.TrainA},
		{"trains.b.near", &s.Dashboard.TrainB},
	} {
		code := strings.ToUpper(strings.TrimSpace(viper.GetString(t.key)))
		st, ok := dashboard.StationByCode(code)
		if !ok {
			return Settings{}, fmt.Errorf("%s: unknown station code %q", t.key, code)
		}
		t.train.Near = st
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Timing.Settle < 0 {
		return fmt.Errorf("animation.settle must not be negative, got %v", s.Timing.Settle)
	}
	if s.Timing.Main <= 0 || s.Timing.Loop <= 0 {
		return fmt.Errorf("animation durations must be positive, got main=%v loop=%v", s.Timing.Main, s.Timing.Loop)
	}
	if s.FPS < 1 || s.FPS > 240 {
		return fmt.Errorf("animation.fps must be within 1..240, got %d", s.FPS)
	}
	if _, err := anim.EasingByName(s.Easing); err != nil {
		return fmt.Errorf("animation.easing: %w", err)
	}
	if s.ChimeVolume < 0 || s.ChimeVolume > 1 {
		return fmt.Errorf("chime.volume must be within 0..1, got %v", s.ChimeVolume)
	}
	if s.FeedInterval <= 0 {
		return fmt.Errorf("feed.interval must be positive, got %v", s.FeedInterval)
	}
	return nil
}
