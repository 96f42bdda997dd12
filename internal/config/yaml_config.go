package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Holds the nested dataset settings and the placeholder matches shown on the
// results page.
type YAMLConfig struct {
	Dataset  DatasetConfig  `yaml:"dataset"`
	Matching MatchingConfig `yaml:"matching"`
	Matches  []MatchConfig  `yaml:"matches"`
}

// DatasetConfig selects and configures the record source.
type DatasetConfig struct {
	Source      string        `yaml:"source"` // file, s3, redis, postgres
	Path        string        `yaml:"path"`
	DatabaseURL string        `yaml:"database_url,omitempty"`
	S3          S3Config      `yaml:"s3,omitempty"`
	Redis       RedisYAMLConf `yaml:"redis,omitempty"`
}

// S3Config locates the dataset object in S3 or an S3-compatible store.
type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Key      string `yaml:"key"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// RedisYAMLConf locates the dataset key in Redis.
type RedisYAMLConf struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

// MatchingConfig selects the match policy.
type MatchingConfig struct {
	Mode   string `yaml:"mode"`             // substring or exact
	Column *int   `yaml:"column,omitempty"` // exact mode only
}

// MatchConfig is one placeholder match entry.
type MatchConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	House       string `yaml:"house"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLFile loads the YAML configuration from path.
// Returns nil without error if the file doesn't exist.
func LoadYAMLFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *YAMLConfig) dataset() DatasetConfig {
	if c == nil {
		return DatasetConfig{}
	}
	return c.Dataset
}

func (c *YAMLConfig) matching() MatchingConfig {
	if c == nil {
		return MatchingConfig{}
	}
	return c.Matching
}

func (c *YAMLConfig) matchColumn() int {
	if c == nil || c.Matching.Column == nil {
		return -1
	}
	return *c.Matching.Column
}

// GetMatches returns the configured placeholder matches, or nil when none are set.
func (c *YAMLConfig) GetMatches() []MatchConfig {
	if c == nil {
		return nil
	}
	return c.Matches
}
