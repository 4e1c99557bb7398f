package notification

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	db "paynotify/db/sqlc"
	"paynotify/internal/audit"
	"paynotify/internal/events"
	"paynotify/internal/order"
	"paynotify/validation"

	"github.com/google/uuid"
)

const auditChannel = "webhook"

// replayMarkerTTL bounds how long an exact (order, charge, status)
// redelivery keeps its events suppressed.
const replayMarkerTTL = 24 * time.Hour

// ReplayMarker reports whether a notification key is seen for the first
// time. A nil marker means every delivery counts as first.
type ReplayMarker interface {
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) bool
}

// NotificationArchiver persists raw webhook bodies for audit. A nil
// archiver disables archival; an archiver error never rejects the
// notification.
type NotificationArchiver interface {
	ArchiveNotification(body []byte, key string) (string, error)
}

type InterfaceService interface {
	ProcessNotification(ctx context.Context, contentType string, rawBody []byte) Result
}

type Service struct {
	repository  order.InterfaceRepository
	dispatcher  events.Dispatcher
	auditLogger audit.InterfaceLogger
	cache       ReplayMarker
	archiver    NotificationArchiver
}

func NewNotificationService(
	repository order.InterfaceRepository,
	dispatcher events.Dispatcher,
	auditLogger audit.InterfaceLogger,
	cache ReplayMarker,
	archiver NotificationArchiver,
) *Service {
	return &Service{
		repository:  repository,
		dispatcher:  dispatcher,
		auditLogger: auditLogger,
		cache:       cache,
		archiver:    archiver,
	}
}

// ProcessNotification runs the full pipeline: parse, resolve the order,
// verify the signature, apply the transition. Every outcome resolves to
// a Result; nothing escapes as an error to the transport layer.
func (s *Service) ProcessNotification(ctx context.Context, contentType string, rawBody []byte) Result {
	s.auditLogger.Append(auditChannel, "notification received: "+string(rawBody))

	n, rej := ParseNotification(contentType, rawBody)
	if rej != nil {
		return s.rejected(rej)
	}

	ref, rej := DecodeOrderReference(n.ReferenceID)
	if rej != nil {
		return s.rejected(rej)
	}

	row, err := s.repository.GetOrderByID(ctx, ref.OrderID)
	if errors.Is(err, sql.ErrNoRows) {
		return s.rejected(reject(ReasonOrderNotFound, "order "+ref.OrderID+" not found"))
	}
	if err != nil {
		return s.rejected(reject(ReasonProcessingError, "notification could not be processed"))
	}

	if !order.SupportedMethod(row.PaymentMethod) {
		return s.rejected(reject(ReasonUnsupportedPaymentMethod, "order payment method is not handled by this endpoint"))
	}

	// Sole authentication boundary. Nothing side-effecting runs between
	// loading the order and this comparison, and nothing mutates state
	// before it passes.
	if ref.Secret == "" {
		return s.rejected(reject(ReasonMissingSignature, "notification carries no order signature"))
	}
	if subtle.ConstantTimeCompare([]byte(ref.Secret), []byte(row.OrderKey)) != 1 {
		return s.rejected(reject(ReasonInvalidSignature, "notification signature does not match the order"))
	}

	charge, _ := n.FirstCharge()
	if err := s.applyTransition(ctx, row, charge); err != nil {
		return s.rejected(reject(ReasonProcessingError, "notification could not be processed"))
	}

	s.archive(rawBody)

	s.auditLogger.Append(auditChannel, fmt.Sprintf("notification accepted: order %s charge %s status %s", row.ID, charge.ID, charge.Status))
	notificationsTotal.WithLabelValues("accepted").Inc()
	return Result{StatusCode: http.StatusOK, Message: "notification processed successfully"}
}

func (s *Service) applyTransition(ctx context.Context, row db.Order, charge Charge) error {
	tr, ok := mapChargeStatus(charge.Status)
	if !ok {
		s.auditLogger.Append(auditChannel, fmt.Sprintf("charge status %q has no transition for order %s, nothing applied", charge.Status, row.ID))
		return nil
	}

	if tr.newStatus == order.StatusCompleted {
		chargeID := validation.ParseStringToNullString(charge.ID)
		if err := s.repository.SetOrderChargeID(ctx, db.SetOrderChargeIDParams{ChargeID: chargeID, ID: row.ID}); err != nil {
			return err
		}
		if err := s.repository.MarkOrderPaymentComplete(ctx, db.MarkOrderPaymentCompleteParams{ChargeID: chargeID, ID: row.ID}); err != nil {
			return err
		}
	} else {
		err := s.repository.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
			Status:     tr.newStatus,
			StatusNote: tr.note,
			ID:         row.ID,
		})
		if err != nil {
			return err
		}
	}

	markerKey := fmt.Sprintf("webhook:%s:%s:%s", row.ID, charge.ID, charge.Status)
	if s.cache != nil && !s.cache.MarkProcessed(ctx, markerKey, replayMarkerTTL) {
		s.auditLogger.Append(auditChannel, fmt.Sprintf("duplicate notification for order %s charge %s, event suppressed", row.ID, charge.ID))
		return nil
	}

	var ord order.Order
	ord.ParseFromOrderObject(row)
	ord.Status = tr.newStatus
	if charge.ID != "" {
		ord.ChargeID = charge.ID
	}
	return s.dispatcher.Emit(ctx, tr.event, ord)
}

func (s *Service) archive(rawBody []byte) {
	if s.archiver == nil {
		return
	}

	key := "notifications/" + uuid.New().String() + ".json"
	if _, err := s.archiver.ArchiveNotification(rawBody, key); err != nil {
		s.auditLogger.Append(auditChannel, "failed to archive notification payload: "+err.Error())
	}
}

func (s *Service) rejected(rej *RejectionError) Result {
	s.auditLogger.Append(auditChannel, fmt.Sprintf("notification rejected (%s): %s", rej.Reason, rej.Message))
	notificationsTotal.WithLabelValues(string(rej.Reason)).Inc()
	return Result{StatusCode: http.StatusBadRequest, Message: rej.Message}
}
