package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

type orderRepository struct{ pool *pgxpool.Pool }

func NewOrderRepository(pool *pgxpool.Pool) repository.OrderRepository {
	return &orderRepository{pool: pool}
}

// GetResult loads the buyer-facing view of an order. Total is derived in SQL
// so it always agrees with the stored subtotal and delivery fee.
func (r *orderRepository) GetResult(ctx context.Context, id int64) (model.OrderResult, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.OrderResult{}, err
	}
	row := r.pool.QueryRow(ctx,
		`SELECT id, buyer_email, order_date, subtotal::float8, delivery_fee::float8,
		        (subtotal + delivery_fee)::float8, status, COALESCE(payment_intent_id, '')
		 FROM orders WHERE id = $1`, id,
	)
	var o model.OrderResult
	err := row.Scan(&o.ID, &o.BuyerEmail, &o.OrderDate, &o.Subtotal, &o.DeliveryFee, &o.Total, &o.Status, &o.PaymentIntentID)
	if err != nil {
		return model.OrderResult{}, repository.MapPgError(err)
	}
	return o, nil
}

var _ repository.OrderRepository = (*orderRepository)(nil)
