package countdown

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultActive        = "active"
	resultInactive      = "inactive"
	resultMissingParams = "missing_params"
	resultError         = "error"
)

var selectionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "countdown",
	Name:      "selection_total",
	Help:      "Number of countdown selections by result",
}, []string{"result"})

var viewCountDropped = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "countdown",
	Name:      "view_count_dropped_total",
	Help:      "Number of view count increments dropped because the queue is full",
})

var viewCountFlushErrors = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "countdown",
	Name:      "view_count_flush_errors_total",
	Help:      "Number of failed view count updates",
})
