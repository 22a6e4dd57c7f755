package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetLevel(logrus.InfoLevel)
	logg.SetOutput(os.Stdout)
}

// SetupLogger applies the configured level; unknown levels keep info.
func SetupLogger(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logg.WithField("level", level).Warn("unknown log level, keeping info")
		return
	}
	logg.SetLevel(parsed)
}

// LogError records a failure with its module and operation so driver detail
// stays in the server log rather than the HTTP response.
func LogError(moduleName, operation string, err error) {
	logg.WithFields(logrus.Fields{
		"module":    moduleName,
		"operation": operation,
	}).Error(err.Error())
}
