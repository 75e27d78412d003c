// Package config loads, normalizes, and validates word similarity settings.
//
// Settings come from a TOML file (explicit path, ~/.config/wordsim/config.toml,
// or wordsim.toml in the working directory) layered over Default(). The CLI and
// HTTP server read everything through this package so input decoding, output
// formatting, scoring and logging share one source of truth.
package config
