// Package config handles application configuration loading and validation.
//
// Configuration is read from a YAML file and validated using struct tags.
// When no file is given, fit2gpx.yml and then config.yml are tried in the
// working directory; if neither exists the defaults are used.
package config
