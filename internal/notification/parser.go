package notification

import (
	"encoding/json"

	"paynotify/validation"
)

// RequiredContentType must match the request header exactly: no wildcard
// and no charset tolerance.
const RequiredContentType = "application/json"

// ParseNotification decodes the raw body into a Notification. A document
// without at least one charge is malformed — the mapper never has to deal
// with a missing first charge.
func ParseNotification(contentType string, rawBody []byte) (Notification, *RejectionError) {
	if contentType != RequiredContentType {
		return Notification{}, reject(ReasonInvalidContentType, "content type must be "+RequiredContentType)
	}

	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return Notification{}, reject(ReasonMalformedBody, "notification body is not valid JSON")
	}

	if len(payload.Charges) == 0 {
		return Notification{}, reject(ReasonMalformedBody, "notification carries no charges")
	}

	return Notification{
		ContentType: contentType,
		RawBody:     rawBody,
		ReferenceID: payload.ReferenceID,
		Charges:     payload.Charges,
	}, nil
}

// DecodeOrderReference extracts the order id and shared secret from the
// reference blob. A blob that does not decode, or decodes without an
// order id, means the notification cannot be tied to any order.
func DecodeOrderReference(referenceBlob string) (OrderReference, *RejectionError) {
	var ref OrderReference
	if err := json.Unmarshal([]byte(referenceBlob), &ref); err != nil {
		return OrderReference{}, reject(ReasonOrderNotIdentified, "reference does not identify an order")
	}

	if err := validation.Validate(ref); err != nil {
		return OrderReference{}, reject(ReasonOrderNotIdentified, "reference does not identify an order")
	}

	return ref, nil
}
