package settings

import "context"

// SettingsRepository is the persistence interface for site_settings
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetByKeys(ctx context.Context, keys []string) (map[string]string, error)
	GetAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
