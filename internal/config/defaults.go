package config

const (
	defaultDataDir     = "~/.local/share/wordmask"
	defaultLogDir      = "~/.local/share/wordmask/logs"
	defaultBackend     = BackendSQLite
	defaultSQLiteFile  = "wordmask.db"
	defaultJSONFile    = "wordmask.json"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultMySQLEnvKey = "WORDMASK_MYSQL_DSN"
)

// Storage backends understood by the store package.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Store: Store{
			Backend: defaultBackend,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
