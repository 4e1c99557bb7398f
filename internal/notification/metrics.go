package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var notificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "paynotify_notifications_total",
	Help: "Processor notifications handled, labelled by outcome.",
}, []string{"outcome"})
