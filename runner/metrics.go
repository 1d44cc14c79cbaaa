package runner

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tickOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "termsnake",
			Subsystem: "runner",
			Name:      "ticks_total",
			Help:      "Ticks evaluated, by outcome.",
		},
		[]string{"outcome"},
	)
	tickDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "termsnake",
			Subsystem: "runner",
			Name:      "tick_seconds",
			Help:      "Time spent in one tick, input poll included.",
		},
	)
	snakeLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "termsnake",
			Subsystem: "runner",
			Name:      "snake_length",
			Help:      "Current number of snake segments.",
		},
	)
	sessionsEnded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "termsnake",
			Subsystem: "runner",
			Name:      "sessions_total",
			Help:      "Sessions ended, by cause.",
		},
		[]string{"cause"},
	)
)

func instrument() func() {
	t := prometheus.NewTimer(tickDuration)
	return func() { t.ObserveDuration() }
}

func init() {
	prometheus.MustRegister(tickOutcomes, tickDuration, snakeLength, sessionsEnded)
}
