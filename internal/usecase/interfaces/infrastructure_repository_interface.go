package interfaces

import (
	"context"

	"idea_api/internal/domain/entities"
)

// IInfrastructureRepository abstracts read access to the VM cost/role view.
//
// Both queries are single read-only round-trips; list results are never nil.
type IInfrastructureRepository interface {
	ListAll(ctx context.Context) ([]entities.VMRecord, error)
	ListByNamesAndWeek(ctx context.Context, names []string, fiscWk string) ([]entities.VMRecord, error)
}
