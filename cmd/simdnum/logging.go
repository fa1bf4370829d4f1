package main

import (
	"os"

	"github.com/op/go-logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

var stderrLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

var fileLogFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

// setupLogging sends log records to stderr and, when logFile is set, to a
// size-rotated file.
func setupLogging(level, logFile string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}

	backends := []logging.Backend{
		logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), stderrLogFormat),
	}
	if logFile != "" {
		w := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     30, //days
		}
		backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), fileLogFormat))
	}

	leveled := logging.SetBackend(backends...)
	leveled.SetLevel(lvl, "")
	return nil
}
