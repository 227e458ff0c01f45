package logging

import (
	"fmt"
	"io"
	"log/syslog"
	"os"
	"path/filepath"
	"strings"

	"webhook-cache-api/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const syslogTag = "webhook-cache"

// Setup initializes the global logger based on configuration
func Setup(cfg config.Config) error {
	level, err := parseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	writer, err := buildWriter(cfg)
	if err != nil {
		return err
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()

	log.Info().
		Str("level", cfg.Logging.Level).
		Str("format", cfg.Logging.Format).
		Str("output", cfg.Logging.Output).
		Msg("Logger initialized")

	return nil
}

func buildWriter(cfg config.Config) (io.Writer, error) {
	switch strings.ToLower(cfg.Logging.Output) {
	case "stdout":
		return consoleWriter(cfg), nil
	case "file":
		return fileWriter(cfg)
	case "syslog":
		return syslogWriter(cfg)
	case "multi":
		return multiWriter(cfg)
	default:
		return nil, fmt.Errorf("invalid log output %q", cfg.Logging.Output)
	}
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	case "panic":
		return zerolog.PanicLevel, nil
	case "disabled":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown level: %s", level)
	}
}

func consoleWriter(cfg config.Config) io.Writer {
	if strings.ToLower(cfg.Logging.Format) == "console" {
		// Pretty console output for development
		return zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "2006-01-02 15:04:05",
		}
	}
	return os.Stdout
}

func fileWriter(cfg config.Config) (io.Writer, error) {
	logDir := filepath.Dir(cfg.Logging.FilePath)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   cfg.Logging.FilePath,
		MaxSize:    cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
		LocalTime:  true,
	}, nil
}

func syslogWriter(cfg config.Config) (io.Writer, error) {
	var writer *syslog.Writer
	var err error

	if cfg.Logging.SyslogAddr == "" {
		writer, err = syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, syslogTag)
	} else {
		network := cfg.Logging.SyslogNet
		if network == "" {
			network = "udp"
		}
		writer, err = syslog.Dial(network, cfg.Logging.SyslogAddr, syslog.LOG_INFO|syslog.LOG_DAEMON, syslogTag)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to syslog: %w", err)
	}
	return writer, nil
}

func multiWriter(cfg config.Config) (io.Writer, error) {
	writers := []io.Writer{consoleWriter(cfg)}

	if cfg.Logging.FilePath != "" {
		fw, err := fileWriter(cfg)
		if err != nil {
			return nil, err
		}
		writers = append(writers, fw)
	}

	if cfg.Logging.SyslogAddr != "" {
		sw, err := syslogWriter(cfg)
		if err != nil {
			// Keep going with the remaining writers
			fmt.Fprintf(os.Stderr, "Warning: failed to setup syslog writer: %v\n", err)
		} else {
			writers = append(writers, sw)
		}
	}

	return zerolog.MultiLevelWriter(writers...), nil
}
