package storage

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process-local counters for store traffic. Failures are counted
// separately because the bucket layer degrades instead of erroring:
// a read failure falls back to seed data and a write failure is
// swallowed, so these counters are the only place the loss shows up.
var (
	readsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "berman_store_reads_total",
		Help: "Bucket reads, including seeded first reads.",
	}, []string{"bucket"})

	seedsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "berman_store_seeds_total",
		Help: "Reads that found no payload and persisted the seed.",
	}, []string{"bucket"})

	writesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "berman_store_writes_total",
		Help: "Bucket writes.",
	}, []string{"bucket"})

	readFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "berman_store_read_failures_total",
		Help: "Reads that failed and fell back to seed data.",
	}, []string{"bucket"})

	writeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "berman_store_write_failures_total",
		Help: "Writes that failed and were dropped.",
	}, []string{"bucket"})
)
