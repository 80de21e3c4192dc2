package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging sets the level and output of the standard logger. An
// empty level keeps the current one; a nil out keeps stderr.
func ConfigureLogging(level string, out io.Writer) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("bunny: log level: %w", err)
		}
		logrus.SetLevel(lvl)
	}
	if out != nil {
		logrus.SetOutput(out)
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}
