package config

const (
	defaultLockFile  = "~/.local/state/launchguard/launchguard.lock"
	defaultLogDir    = "~/.local/state/launchguard/logs"
	defaultLogFormat = ""
	defaultLogLevel  = "info"
	defaultLanguage  = ""
)

// Default returns a Config populated with repository defaults. Target file
// names default to empty so the embedded trust table's names apply.
func Default() Config {
	return Config{
		Paths: Paths{
			LockFile: defaultLockFile,
			LogDir:   defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		UI: UI{
			Language: defaultLanguage,
		},
	}
}
