package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/touchlab-io/gesturekit/gesture"
)

// Config holds application configuration.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Trace  TraceConfig  `mapstructure:"trace"`
}

// EngineConfig holds recognition thresholds and feature toggles.
type EngineConfig struct {
	TapTimeout       time.Duration `mapstructure:"tap_timeout"`
	DoubleTapTimeout time.Duration `mapstructure:"double_tap_timeout"`
	HoldDelay        time.Duration `mapstructure:"hold_delay"`
	SwipeMaxDuration time.Duration `mapstructure:"swipe_max_duration"`
	TouchSlop        float64       `mapstructure:"touch_slop"`
	DoubleTapSlop    float64       `mapstructure:"double_tap_slop"`
	SwipeThreshold   float64       `mapstructure:"swipe_threshold"`

	MultiFingerGestures     bool `mapstructure:"multi_finger_gestures"`
	ServiceHandlesDoubleTap bool `mapstructure:"service_handles_double_tap"`
}

// Timings converts the configured thresholds into engine timings.
func (e EngineConfig) Timings() gesture.Timings {
	return gesture.Timings{
		TapTimeout:       e.TapTimeout,
		DoubleTapTimeout: e.DoubleTapTimeout,
		HoldDelay:        e.HoldDelay,
		SwipeMaxDuration: e.SwipeMaxDuration,
		TouchSlop:        e.TouchSlop,
		DoubleTapSlop:    e.DoubleTapSlop,
		SwipeThreshold:   e.SwipeThreshold,
	}
}

// TraceConfig holds sqlite settings for the recording store.
type TraceConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from file and env. Env var overrides use prefix GESTUREKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	t := gesture.DefaultTimings()
	v.SetDefault("engine.tap_timeout", t.TapTimeout.String())
	v.SetDefault("engine.double_tap_timeout", t.DoubleTapTimeout.String())
	v.SetDefault("engine.hold_delay", t.HoldDelay.String())
	v.SetDefault("engine.swipe_max_duration", t.SwipeMaxDuration.String())
	v.SetDefault("engine.touch_slop", t.TouchSlop)
	v.SetDefault("engine.double_tap_slop", t.DoubleTapSlop)
	v.SetDefault("engine.swipe_threshold", t.SwipeThreshold)
	v.SetDefault("engine.multi_finger_gestures", true)
	v.SetDefault("engine.service_handles_double_tap", false)
	v.SetDefault("trace.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "gesturekit", "traces.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GESTUREKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gesturekit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GESTUREKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// This is primarily used by the lab settings view for tweaking thresholds.
func Save(cfg Config) error {
	path := os.Getenv("GESTUREKIT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "gesturekit", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("engine.tap_timeout", cfg.Engine.TapTimeout.String())
	v.Set("engine.double_tap_timeout", cfg.Engine.DoubleTapTimeout.String())
	v.Set("engine.hold_delay", cfg.Engine.HoldDelay.String())
	v.Set("engine.swipe_max_duration", cfg.Engine.SwipeMaxDuration.String())
	v.Set("engine.touch_slop", cfg.Engine.TouchSlop)
	v.Set("engine.double_tap_slop", cfg.Engine.DoubleTapSlop)
	v.Set("engine.swipe_threshold", cfg.Engine.SwipeThreshold)
	v.Set("engine.multi_finger_gestures", cfg.Engine.MultiFingerGestures)
	v.Set("engine.service_handles_double_tap", cfg.Engine.ServiceHandlesDoubleTap)
	v.Set("trace.path", cfg.Trace.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
