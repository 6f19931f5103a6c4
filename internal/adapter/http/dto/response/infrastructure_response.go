package response

import "idea_api/internal/domain/entities"

type VMRecordResponse struct {
	VMName string   `json:"vm_name"`
	FiscWk string   `json:"fisc_wk"`
	FiscYr *string  `json:"fisc_yr"`
	Cost   *float64 `json:"cost"`
	Role   *string  `json:"role"`
}

func FromVMRecord(rec entities.VMRecord) VMRecordResponse {
	return VMRecordResponse{
		VMName: rec.VMName,
		FiscWk: rec.FiscWk,
		FiscYr: rec.FiscYr,
		Cost:   rec.Cost,
		Role:   rec.Role,
	}
}

// FromVMRecords always returns a non-nil slice so empty results serialize
// as [] rather than null.
func FromVMRecords(records []entities.VMRecord) []VMRecordResponse {
	out := make([]VMRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromVMRecord(rec))
	}
	return out
}

// VMQueryResponse pairs the filtered rows with the count of exactly those
// rows. TotalCount is not a table-wide total.
type VMQueryResponse struct {
	TotalCount int                `json:"total_count"`
	Data       []VMRecordResponse `json:"data"`
}

func NewVMQueryResponse(records []entities.VMRecord, totalCount int) VMQueryResponse {
	return VMQueryResponse{
		TotalCount: totalCount,
		Data:       FromVMRecords(records),
	}
}
