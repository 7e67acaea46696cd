// Package config loads and validates fb2sci configuration data.
//
// It supplies repository defaults, expands tilde paths, and reads the
// optional TOML file from ~/.config/fb2sci/config.toml or ./fb2sci.toml.
// The tool runs fine with no config file at all; the file only adjusts
// logging and the overwrite policy.
package config
