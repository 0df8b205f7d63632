package log

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Configure sets level and output format of the given logger
// Format is either "text" or "json"; an empty level or format keeps the current setting.
func Configure(logger *logrus.Logger, level, format string) error {
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logger.SetLevel(lvl)
	}
	switch strings.ToLower(format) {
	case "":
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format '%s'", format)
	}
	return nil
}
