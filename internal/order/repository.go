package order

import (
	"context"
	"database/sql"

	db "paynotify/db/sqlc"
)

type InterfaceRepository interface {
	GetOrderByID(ctx context.Context, id string) (db.Order, error)
	CreateOrder(ctx context.Context, arg db.CreateOrderParams) (db.Order, error)
	UpdateOrderStatus(ctx context.Context, arg db.UpdateOrderStatusParams) error
	SetOrderChargeID(ctx context.Context, arg db.SetOrderChargeIDParams) error
	MarkOrderPaymentComplete(ctx context.Context, arg db.MarkOrderPaymentCompleteParams) error
}

type Repository struct {
	Conn    *sql.DB
	Queries *db.Queries
}

func NewOrderRepository(Conn *sql.DB) *Repository {
	q := db.New(Conn)
	return &Repository{
		Conn:    Conn,
		Queries: q,
	}
}

func (r *Repository) GetOrderByID(ctx context.Context, id string) (db.Order, error) {
	return r.Queries.GetOrderByID(ctx, id)
}

func (r *Repository) CreateOrder(ctx context.Context, arg db.CreateOrderParams) (db.Order, error) {
	return r.Queries.CreateOrder(ctx, arg)
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, arg db.UpdateOrderStatusParams) error {
	return r.Queries.UpdateOrderStatus(ctx, arg)
}

func (r *Repository) SetOrderChargeID(ctx context.Context, arg db.SetOrderChargeIDParams) error {
	return r.Queries.SetOrderChargeID(ctx, arg)
}

func (r *Repository) MarkOrderPaymentComplete(ctx context.Context, arg db.MarkOrderPaymentCompleteParams) error {
	return r.Queries.MarkOrderPaymentComplete(ctx, arg)
}
