package logger

import (
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelWriter implements a struct to split logs by info and error and up level.
// See func WriteLevel about the separation.
type LevelWriter struct {
	io.Writer
	ErrorWriter io.Writer
	InfoWriter  io.Writer
	TraceWriter io.Writer
	WarnWriter  io.Writer
}

// WriteLevel splits logging by level and links the pointer to the target output depending on the logger defined.
func (lw *LevelWriter) WriteLevel(l zerolog.Level, p []byte) (n int, err error) {
	var w io.Writer

	// disabled logging
	if l == zerolog.Disabled {
		return 0, nil
	}

	// decide where to write this log content
	switch {
	case l == zerolog.TraceLevel:
		w = lw.TraceWriter
	case l == zerolog.WarnLevel:
		w = lw.WarnWriter
	case l > zerolog.WarnLevel: // error and fatal panic go to error
		w = lw.ErrorWriter
	default:
		w = lw.InfoWriter // debug and info go to info
	}

	// return selected logger writer.
	return w.Write(p) //nolint:wrapcheck
}

// DefaultLevel is used when Log.LogLevel is empty.
const DefaultLevel = "warn"

// Init replaces the global zerolog logger.
// Only the enabled outputs are used, with none enabled nothing is logged.
func Init(cfg Log) error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLevel
	}

	logLevel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("loglevel %s is not supported", cfg.LogLevel))
	}

	if cfg.ServiceName == "" {
		return ErrServiceNameIsEmpty
	}

	if cfg.AppName == "" {
		return ErrAppNameIsEmpty
	}

	var writers []io.Writer

	if cfg.Console.Enabled {
		writers = append(writers, NewConsoleWriter(cfg))
	}

	if cfg.File.Enabled {
		fw, fileErr := newRollingFiles(cfg.File)
		if fileErr != nil {
			return fileErr
		}

		writers = append(writers, fw)
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.ErrorHandler = ErrorHandler //nolint:reassign

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Hook(NewPrometheusHook(cfg.ServiceName)).
		With().
		Timestamp().
		Str("app", cfg.AppName)

	// stack traces of pkg/errors only at trace level
	if logLevel == zerolog.TraceLevel {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign
		ctx = ctx.Stack()
	}

	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}

	log.Logger = ctx.Logger()

	return nil
}

// newRollingFiles uses LevelWriter and lumberjack to create file based log.
func newRollingFiles(cfg LogFile) (io.Writer, error) {
	if err := os.MkdirAll(cfg.Path, 0o750); err != nil { //nolint: mnd
		return nil, errors.Wrap(err, "can't create log directory")
	}

	rolling := func(name string) io.Writer {
		return &lumberjack.Logger{
			Filename:   path.Join(cfg.Path, name),
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxAge,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  false,
			Compress:   false,
		}
	}

	return &LevelWriter{
		ErrorWriter: rolling(cfg.ErrorLog),
		InfoWriter:  rolling(cfg.InfoLog),
		TraceWriter: rolling(cfg.TraceLog),
		WarnWriter:  rolling(cfg.WarnLog),
	}, nil
}

// NewConsoleWriter creates the console writer. Every level goes to stderr,
// stdout is reserved for notifications.
func NewConsoleWriter(cfg Log) io.Writer {
	var out io.Writer = os.Stderr

	if cfg.Console.UseConsoleWriter {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			NoColor:    false,
			TimeFormat: time.Kitchen,
		}
	}

	return &LevelWriter{
		ErrorWriter: out,
		InfoWriter:  out,
		TraceWriter: out,
		WarnWriter:  out,
	}
}
