package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/fit2gpx/converter"
)

// Default values used for settings absent from the file
const (
	DefaultExtension  = ".gpx"
	DefaultBufferSize = 64 * 1024
	DefaultWorkers    = 1
)

// SearchPaths are tried in order when no configuration file is given
var SearchPaths = []string{"fit2gpx.yml", "config.yml"}

// Default returns the configuration used when no file is present
func Default() AppConfig {
	return AppConfig{
		Output: OutputConfig{
			Creator:    converter.DefaultCreator,
			Extension:  DefaultExtension,
			BufferSize: DefaultBufferSize,
		},
		Batch: BatchConfig{Workers: DefaultWorkers},
		Logging: LoggingConfig{
			Microseconds: true,
			Warnings:     true,
		},
	}
}

// LoadAppConfig loads and validates the configuration at path. An empty path
// searches SearchPaths and falls back to Default when none of them exists.
func LoadAppConfig(path string) (AppConfig, error) {
	if path == "" {
		for _, p := range SearchPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return AppConfig{}, fmt.Errorf("config file %s not found", path)
		}
		return AppConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
