// Package services provides the flow orchestration the screens delegate
// to: importing and tagging media, browsing, and curating collections.
package services

import "github.com/frameflow/frameflow-core/internal/logging"

// Notifier is the alert surface flows report outcomes through. There is no
// contract beyond a title and a message; the UI decides presentation.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// LogNotifier routes alerts to the structured log, for headless runs and
// tests that do not care about alert contents.
type LogNotifier struct {
	Log *logging.Logger
}

func (n *LogNotifier) logger() *logging.Logger {
	if n.Log != nil {
		return n.Log
	}
	return logging.Get()
}

// Success logs a success alert.
func (n *LogNotifier) Success(title, message string) {
	n.logger().Info(message, map[string]interface{}{"alert": title})
}

// Error logs a failure alert.
func (n *LogNotifier) Error(title, message string) {
	n.logger().Warn(message, map[string]interface{}{"alert": title})
}
