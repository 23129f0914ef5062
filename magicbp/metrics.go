package magicbp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reddit/pppmagic/internal/prometheusbpint"
)

const (
	promNamespace = "magicbp"

	sourceLabel = "source"

	sourceEntropy  = "entropy"
	sourceFallback = "fallback"
)

var (
	sourceLabels = []string{
		sourceLabel,
	}

	initCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "init_total",
		Help:      "Total number of magic number generator initializations by the source chosen",
	}, sourceLabels)

	drawCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "draws_total",
		Help:      "Total number of magic numbers returned by the source they came from",
	}, sourceLabels)

	faultCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "entropy_read_faults_total",
		Help:      "Total number of reads from the entropy source returning fewer bytes than requested",
	})
)
