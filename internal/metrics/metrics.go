package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CasesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cases_created_total",
			Help: "Total cases created",
		},
	)
	TransactionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transactions_created_total",
			Help: "Total transactions created",
		},
	)
	Analyses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Total anomaly analyses run",
		},
	)
	AnomaliesFlagged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "anomalies_flagged_total",
			Help: "Total transactions flagged as anomalous",
		},
	)
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(CasesCreated)
	prometheus.MustRegister(TransactionsCreated)
	prometheus.MustRegister(Analyses)
	prometheus.MustRegister(AnomaliesFlagged)
	prometheus.MustRegister(WorkerQueueDepth)
}
