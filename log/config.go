package log

// Format is the encoding of the global logger.
type Format string

// Enums for Format
const (
	JSONFormat    Format = "json"
	ConsoleFormat Format = "console"
)

// Config is the configuration struct for the log package.
//
// Can be deserialized from YAML.
type Config struct {
	// Level is the log level you want to set your binary to.
	Level Level `yaml:"level"`

	// Format is the log encoding, "json" (default) or "console".
	Format Format `yaml:"format"`
}

// InitFromConfig initializes the global logger using the given Config.
//
// An empty Level defaults to InfoLevel,
// and an empty or unknown Format defaults to JSONFormat.
func InitFromConfig(cfg Config) {
	if cfg.Level == "" {
		cfg.Level = InfoLevel
	}
	if cfg.Format == ConsoleFormat {
		InitLogger(cfg.Level)
		return
	}
	InitLoggerJSON(cfg.Level)
}
