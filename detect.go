// SPDX-License-Identifier: EPL-2.0

package beepdetect

import (
	"fmt"
	"log/slog"

	"github.com/ik5/beepdetect/dsp"
)

// Mode selects the detection strategy.
type Mode int

const (
	// ModeNCC matches band-pass envelopes by normalized cross-correlation.
	ModeNCC Mode = iota
	// ModeRaw cross-correlates peak-normalized waveforms directly.
	ModeRaw
	// ModeSpectral finds beeps by STFT band energy, no template needed.
	ModeSpectral
)

func (m Mode) String() string {
	switch m {
	case ModeNCC:
		return "ncc"
	case ModeRaw:
		return "raw"
	case ModeSpectral:
		return "spectral"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a mode name to its Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "ncc", "":
		return ModeNCC, nil
	case "raw":
		return ModeRaw, nil
	case "spectral":
		return ModeSpectral, nil
	default:
		return ModeNCC, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Params holds a complete set of detection parameters. The zero value is
// not usable; start from DefaultParams.
type Params struct {
	Mode          Mode
	Threshold     float64 // peak acceptance threshold
	MinSeparation float64 // minimum spacing between events, seconds
	SampleRate    int     // rate both signals must carry, Hz
	BandLow       float64 // envelope band lower edge, Hz
	BandHigh      float64 // envelope band upper edge, Hz
	SmoothMs      float64 // envelope smoothing window, milliseconds

	// Optional inclusive time window. Events outside it are dropped.
	Start *float64
	End   *float64
}

// DefaultParams returns the stock parameter set: NCC matching at threshold
// 0.6, events at least half a second apart, 11025 Hz audio, the
// 1100-1300 Hz beep band, 10 ms smoothing, no time window.
func DefaultParams() Params {
	return Params{
		Mode:          ModeNCC,
		Threshold:     0.6,
		MinSeparation: 0.5,
		SampleRate:    11025,
		BandLow:       1100,
		BandHigh:      1300,
		SmoothMs:      10,
	}
}

// Template is a reference beep. Load it once and reuse it across runs; the
// detector never mutates it.
type Template struct {
	Name   string
	Signal dsp.Signal
}

// Result carries detected event times in seconds, ascending, plus their
// MM:SS.mmm rendering.
type Result struct {
	Times     []float64
	Formatted []string
}

// Detector runs beep detection with a fixed parameter set. Safe for
// concurrent use.
type Detector struct {
	params Params
	log    *slog.Logger
}

type Option func(*Detector)

// WithLogger attaches a logger for per-run debug summaries. Without it the
// detector stays silent.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		d.log = l
	}
}

func New(params Params, opts ...Option) *Detector {
	d := &Detector{
		params: params,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Params returns a copy of the detector's parameter set.
func (d *Detector) Params() Params { return d.params }

// Run detects beeps in target. Template modes (ncc, raw) require tmpl; the
// spectral mode ignores it. Events are returned in ascending time order,
// restricted to the configured window when one is set.
func (d *Detector) Run(target dsp.Signal, tmpl Template) (Result, error) {
	if err := target.Validate(); err != nil {
		return Result{}, fmt.Errorf("target: %w", err)
	}

	var (
		times []float64
		err   error
	)

	switch d.params.Mode {
	case ModeSpectral:
		times, err = dsp.DetectSpectral(target)

	case ModeNCC:
		if err := d.checkTemplate(target, tmpl); err != nil {
			return Result{}, err
		}

		var targetEnv, tmplEnv []float64
		targetEnv, err = dsp.Envelope(target, d.params.BandLow, d.params.BandHigh, d.params.SmoothMs)
		if err != nil {
			return Result{}, fmt.Errorf("target envelope: %w", err)
		}
		tmplEnv, err = dsp.Envelope(tmpl.Signal, d.params.BandLow, d.params.BandHigh, d.params.SmoothMs)
		if err != nil {
			return Result{}, fmt.Errorf("template envelope: %w", err)
		}

		times, err = dsp.MatchNCC(targetEnv, tmplEnv, d.params.SampleRate,
			d.params.Threshold, d.params.MinSeparation)

	case ModeRaw:
		if err := d.checkTemplate(target, tmpl); err != nil {
			return Result{}, err
		}

		times, err = dsp.MatchRaw(target.Samples, tmpl.Signal.Samples,
			d.params.SampleRate, d.params.Threshold, d.params.MinSeparation)

	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMode, d.params.Mode)
	}

	if err != nil {
		return Result{}, err
	}

	times = d.applyWindow(times)

	res := Result{
		Times:     times,
		Formatted: make([]string, len(times)),
	}
	for i, ts := range times {
		res.Formatted[i] = FormatTime(ts)
	}

	d.log.Debug("detection run finished",
		slog.String("mode", d.params.Mode.String()),
		slog.String("template", tmpl.Name),
		slog.Int("events", len(times)))

	return res, nil
}

func (d *Detector) checkTemplate(target dsp.Signal, tmpl Template) error {
	if err := tmpl.Signal.Validate(); err != nil {
		return fmt.Errorf("template: %w", err)
	}
	if target.Rate != tmpl.Signal.Rate || target.Rate != d.params.SampleRate {
		return ErrRateMismatch
	}
	return nil
}

// applyWindow keeps events inside the inclusive [Start, End] window.
func (d *Detector) applyWindow(times []float64) []float64 {
	if d.params.Start == nil && d.params.End == nil {
		return times
	}

	kept := times[:0]
	for _, t := range times {
		if d.params.Start != nil && t < *d.params.Start {
			continue
		}
		if d.params.End != nil && t > *d.params.End {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}
