package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromYAML_Defaults(t *testing.T) {
	clearEnv(t, "DATASET_SOURCE", "DATASET_PATH", "MATCH_MODE", "MATCH_COLUMN", "SERVER_ADDR")

	cfg := FromYAML(nil)

	assert.Equal(t, SourceFile, cfg.DatasetSource)
	assert.Equal(t, "data.csv", cfg.DatasetPath)
	assert.Equal(t, MatchSubstring, cfg.MatchMode)
	assert.Equal(t, -1, cfg.MatchColumn)
	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.False(t, cfg.IsExactMatch())
}

func TestFromYAML_EnvOverridesYAML(t *testing.T) {
	column := 2
	yc := &YAMLConfig{
		Dataset: DatasetConfig{
			Source: SourceS3,
			S3:     S3Config{Bucket: "from-yaml", Key: "records.csv"},
		},
		Matching: MatchingConfig{Mode: MatchExact, Column: &column},
	}

	clearEnv(t, "DATASET_SOURCE", "S3_KEY", "MATCH_MODE")
	t.Setenv("S3_BUCKET", "from-env")
	t.Setenv("MATCH_COLUMN", "0")

	cfg := FromYAML(yc)

	assert.Equal(t, SourceS3, cfg.DatasetSource)
	assert.Equal(t, "from-env", cfg.S3Bucket)
	assert.Equal(t, "records.csv", cfg.S3Key)
	assert.True(t, cfg.IsExactMatch())
	assert.Equal(t, 0, cfg.MatchColumn)
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 7},
		{"valid", "3", 3},
		{"negative", "-1", -1},
		{"invalid", "abc", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			if got := getEnvInt("TEST_INT", 7); got != tt.want {
				t.Errorf("getEnvInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"dev", true},
		{"production", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Env: tt.env}
			if got := cfg.IsDev(); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
dataset:
  source: redis
  redis:
    url: redis://cache:6379/1
    key: attendees
matching:
  mode: exact
  column: 0
matches:
  - name: Ada
    description: Likes compilers
    house: House A
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	yc, err := LoadYAMLFile(path)
	require.NoError(t, err)
	require.NotNil(t, yc)

	assert.Equal(t, SourceRedis, yc.Dataset.Source)
	assert.Equal(t, "attendees", yc.Dataset.Redis.Key)
	assert.Equal(t, 0, yc.matchColumn())
	require.Len(t, yc.GetMatches(), 1)
	assert.Equal(t, "House A", yc.GetMatches()[0].House)
}

func TestLoadYAMLFile_Missing(t *testing.T) {
	yc, err := LoadYAMLFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.Nil(t, yc)
	assert.Nil(t, yc.GetMatches())
}

func TestLoadYAMLFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: [unclosed"), 0o600))

	_, err := LoadYAMLFile(path)
	assert.Error(t, err)
}
