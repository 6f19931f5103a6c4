package entities

// VMRecord is one row of the v_infra_vms reporting view: the cost and role
// snapshot of a single virtual machine for one fiscal week. Rows are loaded
// by an external pipeline and are read-only here.
//
// Identity is the (VMName, FiscWk) pair; the backing view guarantees
// uniqueness per pair.
type VMRecord struct {
	VMName string
	FiscWk string
	FiscYr *string
	Cost   *float64
	Role   *string
}
