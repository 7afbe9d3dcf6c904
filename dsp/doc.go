// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the beep-detection core: deterministic signal
// processing routines that turn a mono sample buffer into a list of event
// times.
//
// # Detectors
//
// Three strategies are available:
//
//   - DetectSpectral flags frames whose STFT energy concentrates in the
//     fixed 1100-1300 Hz band. It needs no template.
//   - MatchNCC slides a template envelope over a target envelope (both
//     produced by Envelope) and scores alignments with normalized
//     cross-correlation. This is the accurate mode.
//   - MatchRaw cross-correlates the raw waveforms after peak normalization.
//     Cheaper, more permissive, more sensitive to amplitude and noise.
//
// All detectors report event times in seconds from the start of the signal
// and enforce a minimum separation between events via FindPeaks.
//
// # Purity
//
// Every function in this package is a pure, synchronous function over its
// inputs. There is no shared state, so independent detection calls may run
// concurrently without coordination. Inputs are never mutated.
//
// # Errors
//
// Precondition violations are reported before any heavy computation with
// sentinel errors that wrap one of three categories: ErrInvalidInput for bad
// signals or templates, ErrConfiguration for unusable band edges, and
// ErrComputation (reserved) for unexpected numeric failures. Callers that
// need the class rather than the exact condition can errors.Is against the
// category.
package dsp
