// Package config loads, normalizes, and validates assetmanifest configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ASSETMANIFEST_IMAGES_DIR. The Config type centralizes every knob the image
// and audio manifest builders need so the CLI resolves directories, extension
// sets, and log settings in one pass.
//
// Always obtain settings through this package so downstream code receives
// cleaned paths, canonical extensions, and clear validation errors.
package config
