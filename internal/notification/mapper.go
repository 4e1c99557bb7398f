package notification

import (
	"paynotify/internal/events"
	"paynotify/internal/order"
)

type transition struct {
	newStatus string
	event     string
	note      string
}

// The transition table is keyed only by the reported charge status: the
// order's current status is never consulted, so reapplying the same
// notification lands on the same state. A stale status delivered late
// is applied as-is.
var transitions = map[string]transition{
	ChargeInAnalysis: {order.StatusOnHold, events.OrderHeld, "payment under review by the processor"},
	ChargeWaiting:    {order.StatusOnHold, events.OrderHeld, "awaiting payment confirmation"},
	ChargeDeclined:   {order.StatusFailed, events.OrderFailed, "payment declined by the processor"},
	ChargePaid:       {order.StatusCompleted, events.OrderCompleted, "payment confirmed"},
	ChargeCanceled:   {order.StatusRefunded, events.OrderCancelled, "charge cancelled by the processor"},
}

func mapChargeStatus(status string) (transition, bool) {
	tr, ok := transitions[status]
	return tr, ok
}
