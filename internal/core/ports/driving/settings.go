package driving

import "github.com/custodia-labs/md2docx/internal/core/domain"

// SettingsService resolves application settings from configuration.
type SettingsService interface {
	// Get returns the settings with defaults applied for unset keys.
	// Invalid values are reported as errors rather than silently replaced.
	Get() (*domain.Settings, error)

	// WriteDefaults stores the built-in defaults and persists them.
	WriteDefaults() error

	// ConfigPath returns the backing configuration file path.
	ConfigPath() string
}
