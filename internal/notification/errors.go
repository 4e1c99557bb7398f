package notification

// Reason identifies why a notification was rejected.
type Reason string

const (
	ReasonInvalidContentType       Reason = "invalid_content_type"
	ReasonMalformedBody            Reason = "malformed_body"
	ReasonOrderNotIdentified       Reason = "order_not_identified"
	ReasonOrderNotFound            Reason = "order_not_found"
	ReasonUnsupportedPaymentMethod Reason = "unsupported_payment_method"
	ReasonMissingSignature         Reason = "missing_signature"
	ReasonInvalidSignature         Reason = "invalid_signature"
	ReasonProcessingError          Reason = "processing_error"
)

// RejectionError carries the reason code and the message returned to the
// processor. Every rejection surfaces as HTTP 400; none is fatal.
type RejectionError struct {
	Reason  Reason
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

func reject(reason Reason, message string) *RejectionError {
	return &RejectionError{Reason: reason, Message: message}
}
