package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInput           = "input"
	keyOutput          = "output"
	keyFormat          = "format"
	keyEncoding        = "encoding"
	keyScratchDir      = "scratch_dir"
	keyTitle           = "properties.title"
	keyAuthor          = "properties.author"
	keySubject         = "properties.subject"
	keyTransformStages = "transform.stages"
	keyCodePlaceholder = "transform.code_block_placeholder"
	keyWatchDebounce   = "watch.debounce"
)

// SettingsService resolves settings from a config store over the defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	format, ok := domain.ParseSourceFormat(s.configStore.GetString(keyFormat))
	if !ok {
		return nil, fmt.Errorf("%w: format %q", domain.ErrUnsupportedType, s.configStore.GetString(keyFormat))
	}

	debounce, err := s.getDuration(keyWatchDebounce, defaults.Watch.Debounce)
	if err != nil {
		return nil, err
	}

	stages := defaults.Transform.Stages
	if _, exists := s.configStore.Get(keyTransformStages); exists {
		stages = s.configStore.GetStringSlice(keyTransformStages)
		if stages == nil {
			return nil, fmt.Errorf("%w: %s must be a list of stage names", domain.ErrInvalidInput, keyTransformStages)
		}
	}

	placeholder, err := s.getExactString(keyCodePlaceholder, defaults.Transform.CodeBlockPlaceholder)
	if err != nil {
		return nil, err
	}

	settings := &domain.Settings{
		InputPath:  s.getString(keyInput, defaults.InputPath),
		OutputPath: s.getString(keyOutput, defaults.OutputPath),
		Format:     format,
		Encoding:   s.getString(keyEncoding, defaults.Encoding),
		ScratchDir: s.configStore.GetString(keyScratchDir), // Empty means the OS temp dir
		Properties: domain.Properties{
			Title:   s.configStore.GetString(keyTitle),
			Author:  s.configStore.GetString(keyAuthor),
			Subject: s.configStore.GetString(keySubject),
		},
		Transform: domain.TransformSettings{
			Stages:               stages,
			CodeBlockPlaceholder: placeholder,
		},
		Watch: domain.WatchSettings{
			Debounce: debounce,
		},
	}

	return settings, nil
}

// WriteDefaults stores the built-in defaults and saves the store.
func (s *SettingsService) WriteDefaults() error {
	defaults := domain.DefaultSettings()

	values := []struct {
		key   string
		value any
	}{
		{keyInput, defaults.InputPath},
		{keyOutput, defaults.OutputPath},
		{keyFormat, defaults.Format.String()},
		{keyEncoding, defaults.Encoding},
		{keyTransformStages, defaults.Transform.Stages},
		{keyCodePlaceholder, defaults.Transform.CodeBlockPlaceholder},
		{keyWatchDebounce, defaults.Watch.Debounce.String()},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	if err := s.configStore.Save(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.configStore.Path(), err)
	}
	return nil
}

// ConfigPath returns the backing configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := strings.TrimSpace(s.configStore.GetString(key))
	if val == "" {
		return defaultVal
	}
	return val
}

// getExactString returns the value untrimmed when key is present, so an
// empty string is kept. The default applies only when key is absent.
func (s *SettingsService) getExactString(key, defaultVal string) (string, error) {
	raw, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal, nil
	}
	str, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", domain.ErrInvalidInput, key)
	}
	return str, nil
}

// getDuration accepts Go duration strings ("750ms") or integer milliseconds.
func (s *SettingsService) getDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	raw, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal, nil
	}

	var d time.Duration
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
		}
		d = parsed
	case int, int64, float64:
		d = time.Duration(s.configStore.GetInt(key)) * time.Millisecond
	default:
		return 0, fmt.Errorf("%w: %s has unsupported type %T", domain.ErrInvalidInput, key, raw)
	}

	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", domain.ErrInvalidInput, key)
	}
	return d, nil
}
