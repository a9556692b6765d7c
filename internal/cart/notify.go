package cart

import "github.com/sirupsen/logrus"

// Notifier receives the user-visible confirmations cart mutations produce.
type Notifier interface {
	Notify(title, message string)
}

// LogNotifier routes notifications to a logger.
type LogNotifier struct {
	Logger logrus.FieldLogger
}

func (n LogNotifier) Notify(title, message string) {
	n.Logger.WithField("title", title).Info(message)
}
