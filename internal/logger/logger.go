package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log *Logger
)

type Logger struct {
	*zap.SugaredLogger
	Name string
}

// Config represents configuration options for logger initialization
type Config struct {
	Debug     bool   `mapstructure:"debug"`   // Enable debug logging
	LogToFile bool   `mapstructure:"to_file"` // Also write JSON lines to a file
	LogsDir   string `mapstructure:"dir"`     // Directory for log files, relative to the working directory
	Name      string `mapstructure:"name"`    // Root logger name
}

// Init builds the process-wide logger and stores it in Log.
func Init(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// New builds a logger: colored console output on stdout plus, optionally,
// a JSON file core.
func New(config Config) (*Logger, error) {
	name := config.Name
	if name == "" {
		name = "qrstyle"
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "message",
		LevelKey:       "level",
		TimeKey:        "timestamp",
		NameKey:        "logger",
		CallerKey:      "caller",
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zapcore.InfoLevel
	if config.Debug {
		level = zapcore.DebugLevel
	}

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level),
	}

	if config.LogToFile {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(wd, config.LogsDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		path := filepath.Join(dir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102")))
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		// File encoder without colors
		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(f), level))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return &Logger{
		SugaredLogger: log.Named(name).Sugar(),
		Name:          name,
	}, nil
}

// FromCore wraps an existing core, mainly for tests using zaptest/observer.
func FromCore(core zapcore.Core) *Logger {
	return &Logger{SugaredLogger: zap.New(core).Sugar(), Name: "test"}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar(), Name: "nop"}
}

// Named returns a child logger ("http", "render", etc.)
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.Named(name),
		Name:          name,
	}
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(args...),
		Name:          l.Name,
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format("2006-01-02 15:04:05"))
}
