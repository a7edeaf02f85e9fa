package config

// OutputConfig controls the generated GPX files
type OutputConfig struct {
	Creator    string `yaml:"creator" validate:"required"`
	Extension  string `yaml:"extension" validate:"required,startswith=."`
	BufferSize int    `yaml:"bufferSize" validate:"gte=0"`
}

// BatchConfig controls how many files are converted at once
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=0"` // 0 means one per CPU
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	Microseconds bool `yaml:"microseconds"`
	Warnings     bool `yaml:"warnings"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Output  OutputConfig  `yaml:"output" validate:"required"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}
