package usecase

import (
	"context"
	"errors"
	"strings"

	"idea_api/internal/domain/entities"
	"idea_api/internal/usecase/interfaces"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 1000
)

var (
	ErrInvalidSkip        = errors.New("invalid skip")
	ErrInvalidLimit       = errors.New("invalid limit")
	ErrInvalidSRFNumber   = errors.New("invalid srf number")
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// IOrderingUseCase exposes the SRF order-tracking read operations.
//
// All list operations page with skip (offset, >= 0) and limit (> 0); callers
// that pass the zero value for limit get DefaultLimit.
type IOrderingUseCase interface {
	GetAllOrders(ctx context.Context, skip, limit int) ([]entities.Order, error)
	GetBySRF(ctx context.Context, skip, limit int, srfNumber string) ([]entities.Order, error)
	GetByOrderNumber(ctx context.Context, skip, limit int, orderNumber string) ([]entities.Order, error)
	GetByStatus(ctx context.Context, skip, limit int, status string) ([]entities.Order, error)
	GetTrackingLink(ctx context.Context, orderNumber string) (*string, error)
}

type OrderingUseCase struct {
	repo interfaces.IOrderingRepository
}

var _ IOrderingUseCase = (*OrderingUseCase)(nil)

func NewOrderingUseCase(repo interfaces.IOrderingRepository) *OrderingUseCase {
	return &OrderingUseCase{repo: repo}
}

func (u *OrderingUseCase) GetAllOrders(ctx context.Context, skip, limit int) ([]entities.Order, error) {
	skip, limit, err := normalizePagination(skip, limit)
	if err != nil {
		return nil, err
	}
	return u.repo.ListAll(ctx, skip, limit)
}

func (u *OrderingUseCase) GetBySRF(ctx context.Context, skip, limit int, srfNumber string) ([]entities.Order, error) {
	skip, limit, err := normalizePagination(skip, limit)
	if err != nil {
		return nil, err
	}
	srfNumber = strings.TrimSpace(srfNumber)
	if srfNumber == "" {
		return nil, ErrInvalidSRFNumber
	}
	return u.repo.ListBySRF(ctx, skip, limit, srfNumber)
}

func (u *OrderingUseCase) GetByOrderNumber(ctx context.Context, skip, limit int, orderNumber string) ([]entities.Order, error) {
	skip, limit, err := normalizePagination(skip, limit)
	if err != nil {
		return nil, err
	}
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}
	return u.repo.ListByOrderNumber(ctx, skip, limit, orderNumber)
}

func (u *OrderingUseCase) GetByStatus(ctx context.Context, skip, limit int, status string) ([]entities.Order, error) {
	skip, limit, err := normalizePagination(skip, limit)
	if err != nil {
		return nil, err
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrInvalidOrderStatus
	}
	return u.repo.ListByStatus(ctx, skip, limit, status)
}

// GetTrackingLink returns the tracking URL for an order, or nil when the
// order is unknown or has no link. nil is a normal outcome, not an error.
func (u *OrderingUseCase) GetTrackingLink(ctx context.Context, orderNumber string) (*string, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}
	return u.repo.GetTrackingLink(ctx, orderNumber)
}

func normalizePagination(skip, limit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, ErrInvalidSkip
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 {
		return 0, 0, ErrInvalidLimit
	}
	return skip, limit, nil
}
