package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/md2docx/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/md2docx/internal/adapters/driving/cli"
	"github.com/custodia-labs/md2docx/internal/core/domain"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "md2docx.toml")

	svc, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, path, svc.ConfigPath())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestLoadSettings_NoConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "md2docx.toml"), []byte(`input = "ignored.md"`), 0o644))

	svc, err := loadSettings(cli.NoConfigFile)
	require.NoError(t, err)
	assert.Empty(t, svc.ConfigPath())

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)

	assert.ErrorIs(t, svc.WriteDefaults(), memory.ErrNoFile)
	_, err = os.Stat(filepath.Join(dir, "md2docx.toml"))
	require.NoError(t, err)
}

func TestLoadSettings_EmptyPlaceholderRemovesCode(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "md2docx.toml")
	require.NoError(t, os.WriteFile(config, []byte("[transform]\ncode_block_placeholder = \"\"\n"), 0o644))

	svc, err := loadSettings(config)
	require.NoError(t, err)
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "", settings.Transform.CodeBlockPlaceholder)

	settings.InputPath = filepath.Join(dir, "notes.md")
	settings.OutputPath = filepath.Join(dir, "notes.docx")
	settings.ScratchDir = t.TempDir()
	require.NoError(t, os.WriteFile(settings.InputPath, []byte("Before\n```\ncode\n```\nAfter\n"), 0o644))

	converter, _, err := buildServices(settings)
	require.NoError(t, err)
	_, err = converter.Convert(context.Background(), settings.Request())
	require.NoError(t, err)

	info, err := converter.Inspect(context.Background(), settings.OutputPath)
	require.NoError(t, err)
	require.Len(t, info.Blocks, 2)
	assert.Equal(t, "Before", info.Blocks[0].Text)
	assert.Equal(t, "After", info.Blocks[1].Text)
}

func TestLoadSettings_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "md2docx.toml")
	require.NoError(t, os.WriteFile(path, []byte("input = ["), 0o644))

	_, err := loadSettings(path)
	assert.Error(t, err)
}

func TestBuildServices_UnknownEncoding(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Encoding = "klingon"

	_, _, err := buildServices(&settings)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestBuildServices_UnknownStage(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.Transform.Stages = []string{"nope"}

	_, _, err := buildServices(&settings)
	assert.Error(t, err)
}

func TestBuildServices_Convert(t *testing.T) {
	dir := t.TempDir()
	settings := domain.DefaultSettings()
	settings.InputPath = filepath.Join(dir, "notes.md")
	settings.OutputPath = filepath.Join(dir, "notes.docx")
	settings.ScratchDir = t.TempDir()
	settings.Transform.CodeBlockPlaceholder = "(code)"

	input := "# Title\n\n```\nx := 1\n```\nBody\n"
	require.NoError(t, os.WriteFile(settings.InputPath, []byte(input), 0o644))

	converter, watcher, err := buildServices(&settings)
	require.NoError(t, err)
	require.NotNil(t, watcher)

	result, err := converter.Convert(context.Background(), settings.Request())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Blocks)
	assert.Equal(t, 1, result.Headings)

	info, err := converter.Inspect(context.Background(), settings.OutputPath)
	require.NoError(t, err)
	require.Len(t, info.Blocks, 3)
	assert.Equal(t, "(code)", info.Blocks[1].Text)
	assert.Equal(t, "Body", info.Blocks[2].Text)

	entries, err := os.ReadDir(settings.ScratchDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
