package main

import (
	"github.com/custodia-labs/md2docx/internal/adapters/driven/config/file"
	"github.com/custodia-labs/md2docx/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/md2docx/internal/adapters/driven/source/filesystem"
	"github.com/custodia-labs/md2docx/internal/adapters/driven/watch"
	"github.com/custodia-labs/md2docx/internal/adapters/driving/cli"
	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driving"
	"github.com/custodia-labs/md2docx/internal/core/services"
	"github.com/custodia-labs/md2docx/internal/logger"
	"github.com/custodia-labs/md2docx/internal/ooxml"
	"github.com/custodia-labs/md2docx/internal/transformers"
)

// loadSettings opens the TOML config file at path. cli.NoConfigFile skips
// the file and resolves settings from defaults and flags.
func loadSettings(path string) (driving.SettingsService, error) {
	if path == cli.NoConfigFile {
		return services.NewSettingsService(memory.NewConfigStore()), nil
	}

	store, err := file.NewConfigStore(path)
	if err != nil {
		return nil, err
	}
	return services.NewSettingsService(store), nil
}

// buildServices wires the adapters for one run.
func buildServices(settings *domain.Settings) (driving.ConverterService, driving.WatchService, error) {
	reader, err := filesystem.NewReader(settings.Encoding)
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := transformers.NewDefaultRegistry().BuildPipeline(settings.Transform.Stages, map[string]any{
		transformers.ConfigCodeBlockPlaceholder: settings.Transform.CodeBlockPlaceholder,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("transform stages: %v", pipeline.Names())

	converter := services.NewConverterService(
		reader,
		pipeline,
		ooxml.NewPackager(ooxml.WithScratchDir(settings.ScratchDir)),
		ooxml.NewInspector(),
	)
	watcher := services.NewWatchService(converter, watch.New(settings.Watch.Debounce))

	return converter, watcher, nil
}
