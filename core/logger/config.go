package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum zap level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the zap encoding, either console or json.
	Format string `mapstructure:"format" default:"console"`
	// Color controls styling of user-facing console output (auto, always, never).
	Color string `mapstructure:"color" default:"auto"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
