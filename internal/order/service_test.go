package order

import (
	"context"
	"database/sql"
	"testing"
	"time"

	db "paynotify/db/sqlc"

	"github.com/stretchr/testify/require"
)

type stubRepository struct {
	row db.Order
	err error
}

func (s *stubRepository) GetOrderByID(ctx context.Context, id string) (db.Order, error) {
	if s.err != nil {
		return db.Order{}, s.err
	}
	return s.row, nil
}

func (s *stubRepository) CreateOrder(ctx context.Context, arg db.CreateOrderParams) (db.Order, error) {
	return db.Order{}, nil
}

func (s *stubRepository) UpdateOrderStatus(ctx context.Context, arg db.UpdateOrderStatusParams) error {
	return nil
}

func (s *stubRepository) SetOrderChargeID(ctx context.Context, arg db.SetOrderChargeIDParams) error {
	return nil
}

func (s *stubRepository) MarkOrderPaymentComplete(ctx context.Context, arg db.MarkOrderPaymentCompleteParams) error {
	return nil
}

func TestGetPaymentStatusService(t *testing.T) {
	completedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	repo := &stubRepository{
		row: db.Order{
			ID:                 "1042",
			PaymentMethod:      MethodPix,
			Status:             StatusCompleted,
			ChargeID:           sql.NullString{String: "CH123", Valid: true},
			PaymentCompletedAt: sql.NullTime{Time: completedAt, Valid: true},
		},
	}
	service := NewOrderService(repo)

	result, err := service.GetPaymentStatusService(context.Background(), "1042")
	require.NoError(t, err)
	require.Equal(t, "1042", result.OrderID)
	require.Equal(t, StatusCompleted, result.Status)
	require.Equal(t, "CH123", result.ChargeID)
	require.NotNil(t, result.PaymentCompletedAt)
	require.Equal(t, completedAt, *result.PaymentCompletedAt)
}

func TestGetPaymentStatusService_NotFound(t *testing.T) {
	repo := &stubRepository{err: sql.ErrNoRows}
	service := NewOrderService(repo)

	_, err := service.GetPaymentStatusService(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSupportedMethod(t *testing.T) {
	require.True(t, SupportedMethod(MethodCreditCard))
	require.True(t, SupportedMethod(MethodBoleto))
	require.True(t, SupportedMethod(MethodPix))
	require.False(t, SupportedMethod("paypal"))
	require.False(t, SupportedMethod(""))
}
