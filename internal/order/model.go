package order

import (
	"time"

	db "paynotify/db/sqlc"
	"paynotify/validation"
)

const (
	StatusPending   = "pending"
	StatusOnHold    = "on-hold"
	StatusFailed    = "failed"
	StatusCompleted = "completed"
	StatusRefunded  = "refunded"
)

const (
	MethodCreditCard = "pagbank_credit_card"
	MethodBoleto     = "pagbank_boleto"
	MethodPix        = "pagbank_pix"
)

// SupportedMethod reports whether the order was created through one of
// the gateway payment methods this service handles notifications for.
func SupportedMethod(method string) bool {
	switch method {
	case MethodCreditCard, MethodBoleto, MethodPix:
		return true
	}
	return false
}

type Order struct {
	ID                 string     `json:"id"`
	CustomerEmail      string     `json:"customer_email"`
	PaymentMethod      string     `json:"payment_method"`
	Status             string     `json:"status"`
	ChargeID           string     `json:"charge_id,omitempty"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`
}

type PaymentStatusResponse struct {
	OrderID            string     `json:"order_id"`
	PaymentMethod      string     `json:"payment_method"`
	Status             string     `json:"status"`
	ChargeID           string     `json:"charge_id,omitempty"`
	PaymentCompletedAt *time.Time `json:"payment_completed_at,omitempty"`
}

func (o *Order) ParseFromOrderObject(result db.Order) {
	o.ID = result.ID
	o.CustomerEmail = result.CustomerEmail
	o.PaymentMethod = result.PaymentMethod
	o.Status = result.Status
	o.ChargeID = validation.GetStringFromNull(result.ChargeID)
	o.PaymentCompletedAt = validation.GetTimeFromNull(result.PaymentCompletedAt)
}

func (p *PaymentStatusResponse) ParseFromOrderObject(result db.Order) {
	p.OrderID = result.ID
	p.PaymentMethod = result.PaymentMethod
	p.Status = result.Status
	p.ChargeID = validation.GetStringFromNull(result.ChargeID)
	p.PaymentCompletedAt = validation.GetTimeFromNull(result.PaymentCompletedAt)
}
