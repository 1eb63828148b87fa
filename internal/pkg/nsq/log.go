package nsq

import (
	"strings"

	"github.com/piresc/jumbaa/internal/pkg/logger"
	"github.com/sirupsen/logrus"
)

// logAdapter routes go-nsq's internal log lines into logrus
type logAdapter struct {
	entry *logrus.Entry
}

func newLogAdapter(role string) *logAdapter {
	return &logAdapter{entry: logger.WithFields(logger.String("component", "nsq_"+role))}
}

// Output implements the logger interface expected by go-nsq
func (l *logAdapter) Output(calldepth int, s string) error {
	// go-nsq prefixes lines with a level tag like "WRN"
	switch {
	case strings.HasPrefix(s, "ERR"):
		l.entry.Error(s)
	case strings.HasPrefix(s, "WRN"):
		l.entry.Warn(s)
	default:
		l.entry.Info(s)
	}
	return nil
}
