package request

import "strings"

// VMQueryRequest is the payload of POST /infrastructure/vms. The POST verb
// is historical: the body only selects filter criteria, nothing is written.
type VMQueryRequest struct {
	VMName []string `json:"vm_name" binding:"required,min=1"`
	FiscWk string   `json:"fisc_wk" binding:"required" example:"2026-W01"`
}

// ResolveNames returns the requested VM names with blanks dropped.
func (r VMQueryRequest) ResolveNames() []string {
	names := make([]string, 0, len(r.VMName))
	for _, n := range r.VMName {
		if v := strings.TrimSpace(n); v != "" {
			names = append(names, v)
		}
	}
	return names
}

func (r VMQueryRequest) ResolveFiscWk() string {
	return strings.TrimSpace(r.FiscWk)
}
