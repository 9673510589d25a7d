package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is shared by every package of the seed command.
var Logger = logrus.New()

// InitLogger sets level and output format. Unknown levels fall back to info.
func InitLogger(level, format string) {
	Logger.SetOutput(os.Stdout)

	switch strings.ToLower(format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)
}
