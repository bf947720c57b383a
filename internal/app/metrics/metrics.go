package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbag_auth_requests_total",
		Help: "Total number of auth requests by operation and result.",
	},
		[]string{"operation", "result"},
	)

	BagSummariesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbag_bag_summaries_total",
		Help: "Total number of bag summaries computed.",
	})

	OrdersSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbag_orders_saved_total",
		Help: "Total number of edited orders saved.",
	})

	SearchQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodbag_search_queries_total",
		Help: "Total number of suggestion queries served.",
	})

	NotificationsDeliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbag_notifications_delivered_total",
		Help: "Total number of notifications added to user feeds by source.",
	},
		[]string{"source"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodbag_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
