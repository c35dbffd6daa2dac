// Package config provides configuration structures and utilities for
// seobooster. It defines the generation options populated from CLI flags and
// the optional YAML configuration file with per-locale overrides.
package config
