package interfaces

import (
	"context"

	"idea_api/internal/domain/entities"
)

// IOrderingRepository abstracts read access to the SRF order-details view.
//
// Every list query is ordered by order number and windowed by skip/limit.
// GetTrackingLink returns (nil, nil) when the order does not exist or has no
// link; absence is not an error.
type IOrderingRepository interface {
	ListAll(ctx context.Context, skip, limit int) ([]entities.Order, error)
	ListBySRF(ctx context.Context, skip, limit int, srfNumber string) ([]entities.Order, error)
	ListByOrderNumber(ctx context.Context, skip, limit int, orderNumber string) ([]entities.Order, error)
	ListByStatus(ctx context.Context, skip, limit int, status string) ([]entities.Order, error)
	GetTrackingLink(ctx context.Context, orderNumber string) (*string, error)
}
