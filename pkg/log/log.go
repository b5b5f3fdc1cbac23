// Package log configures the logrus entry threaded through the CLI and
// controllers.
package log

import "github.com/sirupsen/logrus"

func New(version string) *logrus.Entry {
	logger := logrus.New()
	return logger.WithFields(logrus.Fields{
		"program": "lintgate",
		"version": version,
	})
}

// SetLevel applies a log level name to the entry's logger. An empty
// level keeps the default. An invalid level is reported but not fatal.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
