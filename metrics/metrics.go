package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/percona-lab/slist/errors"
)

const metricNamespace = "listctl"

// Counters.
var (
	//nolint:gochecknoglobals
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:      "operations_total",
		Help:      "Total number of list operations applied, by operation.",
		Namespace: metricNamespace,
	}, []string{"op"})

	//nolint:gochecknoglobals
	contractErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "contract_errors_total",
		Help:      "Total number of operations rejected because a precondition did not hold.",
		Namespace: metricNamespace,
	})
)

// Gauges.
var (
	//nolint:gochecknoglobals
	listSizeElements = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "list_size_elements",
		Help:      "Number of elements in the last list processed.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	buildDurationSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name:      "build_duration_seconds",
		Help:      "Duration of the last list construction in seconds.",
		Namespace: metricNamespace,
	})
)

// Init initializes and registers the metrics.
func Init(reg prometheus.Registerer) {
	reg.MustRegister(collectors.NewGoCollector())

	reg.MustRegister(
		operationsTotal,
		contractErrorsTotal,
		listSizeElements,
		buildDurationSeconds,
	)
}

// AddOperation increments the counter of the named operation.
func AddOperation(op string) {
	operationsTotal.WithLabelValues(op).Inc()
}

// AddContractError increments the rejected operations counter.
func AddContractError() {
	contractErrorsTotal.Inc()
}

// SetListSize sets the list size gauge.
func SetListSize(n int) {
	listSizeElements.Set(float64(n))
}

// SetBuildDuration sets the list construction duration gauge.
func SetBuildDuration(dur time.Duration) {
	buildDurationSeconds.Set(dur.Seconds())
}

// WriteFile writes the metrics gathered by g to path in the Prometheus text format.
func WriteFile(path string, g prometheus.Gatherer) error {
	err := prometheus.WriteToTextfile(path, g)

	return errors.Wrap(err, "write metrics")
}
