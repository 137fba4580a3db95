package config

const (
	defaultDataDir          = "~/.local/share/stichwort"
	defaultLogDir           = "~/.local/share/stichwort/logs"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultOverlapThreshold = 0.5
	defaultPromptTagLimit   = 30
	defaultMaxSynonyms      = 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Tags: Tags{
			OverlapThreshold: defaultOverlapThreshold,
			PromptTagLimit:   defaultPromptTagLimit,
			MaxSynonyms:      defaultMaxSynonyms,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
