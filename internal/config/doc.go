// Package config loads, normalizes, and validates showscan configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// scanner and CLI need: catalog and log directories, probing behaviour, and
// external converter commands.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
