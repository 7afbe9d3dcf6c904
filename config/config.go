// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/ik5/beepdetect"
)

// DefaultTemplatePath is where the reference beep lives unless overridden.
const DefaultTemplatePath = "beep_template.wav"

// Config carries the full detection setup: the detector parameters plus the
// template location.
type Config struct {
	Mode          beepdetect.Mode
	Threshold     float64
	MinSeparation float64
	SampleRate    int
	BandLow       float64
	BandHigh      float64
	SmoothMs      float64
	StartS        *float64
	EndS          *float64

	TemplatePath string
}

// Default returns the stock configuration.
func Default() Config {
	p := beepdetect.DefaultParams()
	return Config{
		Mode:          p.Mode,
		Threshold:     p.Threshold,
		MinSeparation: p.MinSeparation,
		SampleRate:    p.SampleRate,
		BandLow:       p.BandLow,
		BandHigh:      p.BandHigh,
		SmoothMs:      p.SmoothMs,
		TemplatePath:  DefaultTemplatePath,
	}
}

// Load builds a Config from defaults, an optional INI file (section
// [detect]) and BEEP_* environment variables, in that order of precedence.
// A missing file is fine; malformed values fall back to the layer below.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := ini.LooseLoad(path)
		if err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.applySection(file.Section("detect"))
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applySection(sec *ini.Section) {
	c.Threshold = sec.Key("threshold").MustFloat64(c.Threshold)
	c.MinSeparation = sec.Key("min_sep").MustFloat64(c.MinSeparation)
	c.SampleRate = sec.Key("sample_rate").MustInt(c.SampleRate)
	c.BandLow = sec.Key("band_low").MustFloat64(c.BandLow)
	c.BandHigh = sec.Key("band_high").MustFloat64(c.BandHigh)
	c.SmoothMs = sec.Key("smooth_ms").MustFloat64(c.SmoothMs)

	if v := sec.Key("template").String(); v != "" {
		c.TemplatePath = v
	}
	if v := sec.Key("mode").String(); v != "" {
		if mode, err := beepdetect.ParseMode(v); err == nil {
			c.Mode = mode
		}
	}
	if sec.HasKey("start_s") {
		if v, err := sec.Key("start_s").Float64(); err == nil {
			c.StartS = &v
		}
	}
	if sec.HasKey("end_s") {
		if v, err := sec.Key("end_s").Float64(); err == nil {
			c.EndS = &v
		}
	}
}

func (c *Config) applyEnv() {
	c.Threshold = envFloat("BEEP_THRESHOLD", c.Threshold)
	c.MinSeparation = envFloat("BEEP_MIN_SEP", c.MinSeparation)
	c.SampleRate = envInt("BEEP_SR", c.SampleRate)
	c.BandLow = envFloat("BEEP_BAND_LOW", c.BandLow)
	c.BandHigh = envFloat("BEEP_BAND_HIGH", c.BandHigh)
	c.SmoothMs = envFloat("BEEP_SMOOTH_MS", c.SmoothMs)

	if v := os.Getenv("BEEP_TEMPLATE"); v != "" {
		c.TemplatePath = v
	}

	// BEEP_RAW predates BEEP_MODE and survives as a boolean alias.
	if v := os.Getenv("BEEP_RAW"); v != "" {
		if raw, err := strconv.ParseBool(v); err == nil && raw {
			c.Mode = beepdetect.ModeRaw
		}
	}
	if v := os.Getenv("BEEP_MODE"); v != "" {
		if mode, err := beepdetect.ParseMode(v); err == nil {
			c.Mode = mode
		}
	}

	if v, ok := envOptFloat("BEEP_START_S"); ok {
		c.StartS = &v
	}
	if v, ok := envOptFloat("BEEP_END_S"); ok {
		c.EndS = &v
	}
}

// Params converts the configuration into detector parameters.
func (c Config) Params() beepdetect.Params {
	return beepdetect.Params{
		Mode:          c.Mode,
		Threshold:     c.Threshold,
		MinSeparation: c.MinSeparation,
		SampleRate:    c.SampleRate,
		BandLow:       c.BandLow,
		BandHigh:      c.BandHigh,
		SmoothMs:      c.SmoothMs,
		Start:         c.StartS,
		End:           c.EndS,
	}
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envOptFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
