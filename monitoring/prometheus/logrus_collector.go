package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

const (
	prefixKey     = "prefix"
	defaultPrefix = "main"
)

var logEntries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "credfetch_log_entries_total",
	Help: "Warnings and errors logged during a run, by level and package prefix.",
}, []string{"level", "prefix"})

// LogrusCollector is a logrus hook counting the warnings and errors a run logs.
type LogrusCollector struct{}

// NewLogrusCollector returns the hook. Every instance feeds the same counter.
func NewLogrusCollector() LogrusCollector {
	return LogrusCollector{}
}

// Fire implements logrus.Hook.
func (LogrusCollector) Fire(entry *logrus.Entry) error {
	prefix := defaultPrefix
	if v, ok := entry.Data[prefixKey]; ok {
		prefix = fmt.Sprint(v)
	}
	logEntries.WithLabelValues(entry.Level.String(), prefix).Inc()
	return nil
}

// Levels implements logrus.Hook.
func (LogrusCollector) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel}
}
