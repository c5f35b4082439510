package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the optional configuration file (config.json or config.yaml).
// Zero values leave the environment settings untouched.
type Config struct {
	Damping       float64 `json:"damping" yaml:"damping"`
	Samples       int     `json:"samples" yaml:"samples"`
	Threshold     float64 `json:"threshold" yaml:"threshold"`
	MaxIterations int     `json:"maxIterations" yaml:"maxIterations"`
	Seed          uint64  `json:"seed" yaml:"seed"`
	Corpus        string  `json:"corpus" yaml:"corpus"` // Corpus resource (directory, file or URL)
	Output        string  `json:"output" yaml:"output"` // Result file
}

// Load configuration file at path; the format is picked from the extension
func LoadConfiguration(path string) (config Config, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read: %w", err)
		return
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(bytes, &config); err != nil {
			err = fmt.Errorf("parse: %w", err)
		}
	default:
		if err = json.Unmarshal(bytes, &config); err != nil {
			err = fmt.Errorf("parse: %w", err)
		}
	}
	return
}

// Apply overrides env with the values set in the configuration file
func (c Config) Apply(env *EnvVars) {
	if c.Damping != 0 {
		env.Damping = c.Damping
	}
	if c.Samples != 0 {
		env.Samples = c.Samples
	}
	if c.Threshold != 0 {
		env.Threshold = c.Threshold
	}
	if c.MaxIterations != 0 {
		env.MaxIterations = c.MaxIterations
	}
	if c.Seed != 0 {
		env.Seed = c.Seed
	}
}
