package usecase

import (
	"context"
	"errors"
	"strings"

	"idea_api/internal/domain/entities"
	"idea_api/internal/usecase/interfaces"
)

var (
	ErrNoVMNames     = errors.New("no vm names provided")
	ErrInvalidFiscWk = errors.New("invalid fiscal week")
)

// IInfrastructureUseCase exposes the VM cost/role read operations.
type IInfrastructureUseCase interface {
	GetAll(ctx context.Context) ([]entities.VMRecord, error)
	QueryVMs(ctx context.Context, names []string, fiscWk string) ([]entities.VMRecord, int, error)
}

type InfrastructureUseCase struct {
	repo interfaces.IInfrastructureRepository
}

var _ IInfrastructureUseCase = (*InfrastructureUseCase)(nil)

func NewInfrastructureUseCase(repo interfaces.IInfrastructureRepository) *InfrastructureUseCase {
	return &InfrastructureUseCase{repo: repo}
}

func (u *InfrastructureUseCase) GetAll(ctx context.Context) ([]entities.VMRecord, error) {
	return u.repo.ListAll(ctx)
}

// QueryVMs returns the rows matching any of the given VM names within one
// fiscal week, plus the count of exactly those rows (not a global total).
func (u *InfrastructureUseCase) QueryVMs(ctx context.Context, names []string, fiscWk string) ([]entities.VMRecord, int, error) {
	cleaned := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	if len(cleaned) == 0 {
		return nil, 0, ErrNoVMNames
	}

	fiscWk = strings.TrimSpace(fiscWk)
	if fiscWk == "" {
		return nil, 0, ErrInvalidFiscWk
	}

	records, err := u.repo.ListByNamesAndWeek(ctx, cleaned, fiscWk)
	if err != nil {
		return nil, 0, err
	}
	return records, len(records), nil
}
