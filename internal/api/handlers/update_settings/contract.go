package update_settings

import "context"

// SettingsService is the settings service interface
type SettingsService interface {
	Update(ctx context.Context, updates map[string]string) (map[string]string, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
