// Package config loads, normalizes, and validates statbook configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the STATBOOK_LOG_LEVEL environment
// fallback. The Config type centralizes every knob the paragraph and poll
// commands need so both binaries resolve settings the same way.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
