package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/md2docx/internal/adapters/driven/config/file"
	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driving"
	"github.com/custodia-labs/md2docx/internal/core/services"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
	assert.Equal(t, "show", configShowCmd.Use)
	assert.Equal(t, "init", configInitCmd.Use)
}

func TestConfigShow_Defaults(t *testing.T) {
	setupTestServices(t)

	stdout, _, err := executeCommand(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: (none)")
	assert.Contains(t, stdout, "Input: "+domain.DefaultInputPath)
	assert.Contains(t, stdout, "Output: "+domain.DefaultOutputPath)
	assert.Contains(t, stdout, "Format: auto")
	assert.Contains(t, stdout, "Scratch dir: (system temp directory)")
	assert.Contains(t, stdout, "[Properties]\n  (none)")
	assert.Contains(t, stdout, "Stages: code_blocks, inline_code, links, emphasis, tables")
	assert.Contains(t, stdout, `Code block placeholder: "[コードブロック]"`)
	assert.Contains(t, stdout, "Debounce: 500ms")
}

func TestConfigShow_StoredValues(t *testing.T) {
	setupTestServices(t, map[string]any{
		"properties.author": "Platform Team",
		"transform.stages":  []any{},
	})

	stdout, _, err := executeCommand(t, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Author: Platform Team")
	assert.Contains(t, stdout, "Stages: (none)")
}

// useFileSettings wires the real TOML store so config init touches disk.
func useFileSettings(t *testing.T) {
	t.Helper()
	setupTestServices(t)
	loadSettings = func(path string) (driving.SettingsService, error) {
		store, err := file.NewConfigStore(path)
		if err != nil {
			return nil, err
		}
		return services.NewSettingsService(store), nil
	}
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	useFileSettings(t)
	path := filepath.Join(t.TempDir(), "md2docx.toml")

	stdout, _, err := executeCommand(t, "config", "init", "--config", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote default settings to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[transform]")
	assert.Contains(t, string(data), "code_blocks")

	store, err := file.NewConfigStore(path)
	require.NoError(t, err)
	settings, err := services.NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	useFileSettings(t)
	path := filepath.Join(t.TempDir(), "md2docx.toml")
	require.NoError(t, os.WriteFile(path, []byte("input = \"keep.md\"\n"), 0o644))

	_, _, err := executeCommand(t, "config", "init", "-c", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "input = \"keep.md\"\n", string(data))

	_, _, err = executeCommand(t, "config", "init", "-c", path, "--force")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), domain.DefaultOutputPath)
}

func TestConfigInit_NoConfigFile(t *testing.T) {
	ts := setupTestServices(t)

	_, _, err := executeCommand(t, "config", "init", "--config", NoConfigFile)

	require.Error(t, err)
	assert.Equal(t, NoConfigFile, ts.configArg)
	assert.Contains(t, err.Error(), "config init needs a file path")
}
