// Package config loads, normalizes, and validates textpipe configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit path, the user config
// directory, or the working directory. The Config type centralizes the input
// and output locations, output behaviour, report sizing, and logging knobs so
// the CLI resolves everything in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical enum values, and clear validation errors.
package config
