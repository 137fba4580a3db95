// Package config loads, normalizes, and validates stichwort configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/stichwort/config.toml or a
// project-local stichwort.toml. The Config type centralizes every knob the CLI
// and the tag engine need: data and log directories, synonym matching
// thresholds, the synonym table override path, and logging output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
