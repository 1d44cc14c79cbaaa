package commands

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var logOutput io.Closer

// setupLogging points logrus at the log file. The terminal belongs to the
// game, so without a file logs are dropped.
func setupLogging() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	log.SetLevel(level)

	if logFile == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetOutput(f)
	logOutput = f
	return nil
}

// closeLogging closes the log file, if any. Later log calls are dropped.
func closeLogging() error {
	if logOutput == nil {
		return nil
	}
	log.SetOutput(io.Discard)
	err := logOutput.Close()
	logOutput = nil
	return errors.Wrap(err, "close log file")
}
