package repository

import (
	"context"

	"idea_api/internal/domain/entities"
	"idea_api/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultInfraVMsView = "v_infra_vms"

const vmColumns = "vm_name, fisc_wk, fisc_yr, cost, role"

// InfrastructurePgRepository reads VM cost/role rows from the reporting view.
//
// View requirements:
//   - columns: vm_name, fisc_wk (NOT NULL), fisc_yr, cost, role
//   - one row per (vm_name, fisc_wk)
//
// vm_name and fisc_wk are scanned into plain strings on purpose: a NULL in
// either column is upstream data corruption and must fail the request, not
// reach a client as an empty value.
type InfrastructurePgRepository struct {
	pool *pgxpool.Pool
	view string
}

var _ interfaces.IInfrastructureRepository = (*InfrastructurePgRepository)(nil)

func NewInfrastructurePgRepository(pool *pgxpool.Pool) *InfrastructurePgRepository {
	return &InfrastructurePgRepository{
		pool: pool,
		view: getenvDefault("INFRA_VMS_VIEW", defaultInfraVMsView),
	}
}

func (r *InfrastructurePgRepository) ListAll(ctx context.Context) ([]entities.VMRecord, error) {
	rows, err := r.pool.Query(ctx, "SELECT "+vmColumns+" FROM "+r.view)
	if err != nil {
		return nil, err
	}
	return scanVMRecords(rows)
}

func (r *InfrastructurePgRepository) ListByNamesAndWeek(ctx context.Context, names []string, fiscWk string) ([]entities.VMRecord, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+vmColumns+" FROM "+r.view+" WHERE vm_name = ANY($1) AND fisc_wk = $2",
		names, fiscWk,
	)
	if err != nil {
		return nil, err
	}
	return scanVMRecords(rows)
}

func scanVMRecords(rows pgx.Rows) ([]entities.VMRecord, error) {
	defer rows.Close()

	records := make([]entities.VMRecord, 0)
	for rows.Next() {
		var rec entities.VMRecord
		if err := rows.Scan(&rec.VMName, &rec.FiscWk, &rec.FiscYr, &rec.Cost, &rec.Role); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
