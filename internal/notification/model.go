package notification

// Charge statuses reported by the processor. Anything outside this set
// is accepted as a no-op: the notification is valid, no transition maps.
const (
	ChargeInAnalysis = "IN_ANALYSIS"
	ChargeWaiting    = "WAITING"
	ChargeDeclined   = "DECLINED"
	ChargePaid       = "PAID"
	ChargeCanceled   = "CANCELED"
)

type Charge struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// webhookPayload is the wire shape of a processor notification.
type webhookPayload struct {
	ReferenceID string   `json:"reference_id"`
	Charges     []Charge `json:"charges"`
}

// Notification is the decoded inbound payload. Immutable once parsed,
// scoped to a single request.
type Notification struct {
	ContentType string
	RawBody     []byte
	ReferenceID string
	Charges     []Charge
}

// FirstCharge returns the charge the transition is driven by. Only the
// first charge of a notification is ever consulted.
func (n Notification) FirstCharge() (Charge, bool) {
	if len(n.Charges) == 0 {
		return Charge{}, false
	}
	return n.Charges[0], true
}

// OrderReference is decoded from the reference blob the merchant embedded
// at charge creation. The password is the per-order shared secret; its
// presence is checked by the signature stage, not here.
type OrderReference struct {
	OrderID string `json:"id" validate:"required"`
	Secret  string `json:"password"`
}

// Result is the uniform (status code, message) pair every notification
// resolves to.
type Result struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}
