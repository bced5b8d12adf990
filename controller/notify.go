package controller

import "go.uber.org/zap"

// Notifier receives the transient success/error notifications the
// presentation layer renders as toasts. Validation failures do not go
// through the notifier; they are held on the form controller for inline
// rendering.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier is the default Notifier, writing notifications to the logger
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a Notifier backed by a zap logger
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

// Success logs a success notification
func (n *LogNotifier) Success(message string) {
	n.log.Info("notification", zap.String("kind", "success"), zap.String("message", message))
}

// Error logs an error notification
func (n *LogNotifier) Error(message string) {
	n.log.Warn("notification", zap.String("kind", "error"), zap.String("message", message))
}
