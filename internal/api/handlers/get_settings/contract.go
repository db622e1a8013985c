package get_settings

import "context"

// SettingsService is the settings service interface
type SettingsService interface {
	All(ctx context.Context) (map[string]string, error)
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
