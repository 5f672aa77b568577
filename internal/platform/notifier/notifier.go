package notifier

import (
	"fmt"

	"github.com/freshgrocer/storefront-service/internal/platform/logger"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is the user-facing notification collaborator. The storefront UI
// renders these as toasts; server-side we only need a single sink that
// services can be handed instead of reaching for a global.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier that writes notifications to the
// platform logger. Used as the default sink and in tests.
func NewLogNotifier() Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(title, description string, severity Severity) {
	msg := fmt.Sprintf("notification [%s]: %s - %s", severity, title, description)
	switch severity {
	case SeverityError:
		logger.Error(msg, nil)
	case SeverityWarning:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}
}
