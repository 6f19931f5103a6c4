package repository

import (
	"context"
	"errors"

	"idea_api/internal/domain/entities"
	"idea_api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The source view name is mixed-case, so it stays quoted in SQL.
const defaultOrderDetailsView = `"V_iDEAAPI_SRF_Order_Details"`

const orderColumns = `srf_number, order_number, bu_id, tracking_link, service_tags,
	order_status, order_date, cancel_date, cancel_reason, estimated_ship_date,
	shipped_date, estimated_delivery_date, delivery_date, revised_ship_date,
	revised_delivery_date, delivery_status`

// OrderingPgRepository reads SRF order-tracking rows from the reporting view.
//
// Every list query shares the same shape: stable ORDER BY order_number plus
// an OFFSET/LIMIT window, optionally narrowed by one equality predicate. No
// uniqueness is assumed for order_number; that is trusted to the source.
type OrderingPgRepository struct {
	pool *pgxpool.Pool
	view string
}

var _ interfaces.IOrderingRepository = (*OrderingPgRepository)(nil)

func NewOrderingPgRepository(pool *pgxpool.Pool) *OrderingPgRepository {
	return &OrderingPgRepository{
		pool: pool,
		view: getenvDefault("ORDER_DETAILS_VIEW", defaultOrderDetailsView),
	}
}

func (r *OrderingPgRepository) ListAll(ctx context.Context, skip, limit int) ([]entities.Order, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+orderColumns+" FROM "+r.view+" ORDER BY order_number OFFSET $1 LIMIT $2",
		skip, limit,
	)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

func (r *OrderingPgRepository) ListBySRF(ctx context.Context, skip, limit int, srfNumber string) ([]entities.Order, error) {
	return r.listByField(ctx, skip, limit, "srf_number", srfNumber)
}

func (r *OrderingPgRepository) ListByOrderNumber(ctx context.Context, skip, limit int, orderNumber string) ([]entities.Order, error) {
	return r.listByField(ctx, skip, limit, "order_number", orderNumber)
}

func (r *OrderingPgRepository) ListByStatus(ctx context.Context, skip, limit int, status string) ([]entities.Order, error) {
	return r.listByField(ctx, skip, limit, "order_status", status)
}

func (r *OrderingPgRepository) listByField(ctx context.Context, skip, limit int, field, value string) ([]entities.Order, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+orderColumns+" FROM "+r.view+" WHERE "+field+" = $1 ORDER BY order_number OFFSET $2 LIMIT $3",
		value, skip, limit,
	)
	if err != nil {
		return nil, err
	}
	return scanOrders(rows)
}

// GetTrackingLink resolves the tracking URL for one order. Missing order and
// NULL link both come back as (nil, nil): absence is a valid answer here.
func (r *OrderingPgRepository) GetTrackingLink(ctx context.Context, orderNumber string) (*string, error) {
	var link *string
	err := r.pool.QueryRow(ctx,
		"SELECT tracking_link FROM "+r.view+" WHERE order_number = $1",
		orderNumber,
	).Scan(&link)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return link, nil
}

func scanOrders(rows pgx.Rows) ([]entities.Order, error) {
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var o entities.Order
		err := rows.Scan(
			&o.SRFNumber, &o.OrderNumber, &o.BuID, &o.TrackingLink, &o.ServiceTags,
			&o.OrderStatus, &o.OrderDate, &o.CancelDate, &o.CancelReason, &o.EstimatedShipDate,
			&o.ShippedDate, &o.EstimatedDeliveryDate, &o.DeliveryDate, &o.RevisedShipDate,
			&o.RevisedDeliveryDate, &o.DeliveryStatus,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
