package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `toml:"enabled"`
	UseConsoleWriter bool // human readable output instead of JSON lines
}

// LogFile implements a file based logger, one rolling file per level group.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	ErrorLog string `mapstructure:"error" toml:"error"`
	InfoLog  string `mapstructure:"info"  toml:"info"`
	TraceLog string `mapstructure:"trace" toml:"trace"`
	WarnLog  string `mapstructure:"warn"  toml:"warn"`

	MaxSize    int `toml:"maxSize"`    // megabytes before rotation
	MaxBackups int `toml:"maxBackups"` // rotated files to keep
	MaxAge     int `toml:"maxAge"`     // days to keep rotated files
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	ReportCaller bool

	AppName     string
	ServiceName string

	Console Console
	File    LogFile `toml:"file"`
}
