package moderation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_transitions_total",
			Help: "Approve/reject transitions by content kind and target status",
		},
		[]string{"kind", "status"},
	)

	// PendingBacklog is refreshed by the scheduler.
	PendingBacklog = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moderation_pending_items",
			Help: "Items waiting for review by content kind",
		},
		[]string{"kind"},
	)
)
