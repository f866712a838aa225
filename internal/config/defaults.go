package config

const (
	defaultLanguage   = "en"
	defaultOutputFile = "asana_import.csv"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Language:         defaultLanguage,
			IncludeCompleted: false,
			FlattenSubtasks:  true,
			BOM:              true,
			DefaultFile:      defaultOutputFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
