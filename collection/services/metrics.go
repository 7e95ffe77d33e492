package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	SyncOutcomeFresh              = "fresh"
	SyncOutcomeNotModified        = "not_modified"
	SyncOutcomePreconditionFailed = "precondition_failed"
	SyncOutcomeNotFound           = "not_found"
	SyncOutcomeFailure            = "failure"
)

var (
	Registry = prometheus.NewRegistry()

	SyncOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "classwatch",
		Name:      "sync_total",
		Help:      "Catalog synchronizations by term and outcome.",
	}, []string{"term", "outcome"})

	CachedDocumentBytes = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "classwatch",
		Name:      "cached_document_bytes",
		Help:      "Size of the last document stored for a term.",
	}, []string{"term"})
)

func init() {
	Registry.MustRegister(SyncOutcomes, CachedDocumentBytes)
}

// writes the registry for the node exporter textfile collector
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
