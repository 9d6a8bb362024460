package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileWritesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".fiv.toml")

	cfg, err := loadConfigFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	// The defaults must now exist on disk and load back identically
	_, err = os.Stat(configPath)
	require.NoError(t, err)

	reloaded, err := loadConfigFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigValid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".fiv.toml")
	content := `min_window_size = [1024, 768]
sort_algorithm = "ModifiedTime"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := loadConfigFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, [2]int{1024, 768}, cfg.MinWindowSize)
	assert.Equal(t, SortModifiedTime, cfg.SortAlgorithm)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "UnknownKey",
			content: `min_window_size = [800, 600]
sort_algorithm = "FileName"
max_window_size = [4000, 4000]
`,
		},
		{
			name: "UnknownSortAlgorithm",
			content: `min_window_size = [800, 600]
sort_algorithm = "Random"
`,
		},
		{
			name: "ZeroWindowSize",
			content: `min_window_size = [0, 600]
sort_algorithm = "FileName"
`,
		},
		{
			name: "NegativeWindowSize",
			content: `min_window_size = [800, -600]
sort_algorithm = "FileName"
`,
		},
		{
			name: "MissingSortAlgorithm",
			content: `min_window_size = [800, 600]
`,
		},
		{
			name:    "MalformedToml",
			content: `min_window_size = [800,`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), ".fiv.toml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0644))

			_, err := loadConfigFromPath(configPath)
			require.Error(t, err)

			var cfgErr *ConfigError
			assert.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, configPath, cfgErr.Path)
		})
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".fiv.toml")
	cfg := Config{
		MinWindowSize: [2]int{640, 480},
		SortAlgorithm: SortCreatedTime,
	}

	require.NoError(t, saveConfigToPath(cfg, configPath))

	loaded, err := loadConfigFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
