// SPDX-License-Identifier: EPL-2.0

// Package config layers the detection setup: built-in defaults, then an
// optional INI file ([detect] section), then BEEP_* environment variables.
// Malformed values at any layer fall back to the layer below rather than
// failing the load.
package config
