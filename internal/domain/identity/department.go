package identity

// Department is the operator's organizational unit. It is the authorization
// dimension used to decide who may invoke which warehouse operation: coarse
// gating happens at the HTTP layer, the production engine re-checks its own
// allow-list.
type Department string

const (
	DepartmentAdmin        Department = "ADMIN"
	DepartmentWarehouse    Department = "WAREHOUSE"
	DepartmentMachineTools Department = "MACHINE_TOOLS"
	DepartmentTechOffice   Department = "TECH_OFFICE"
	DepartmentProduction   Department = "PRODUCTION"
)

// String returns the string representation of the department
func (d Department) String() string {
	return string(d)
}

// IsValid returns true if the department is a known value
func (d Department) IsValid() bool {
	switch d {
	case DepartmentAdmin,
		DepartmentWarehouse,
		DepartmentMachineTools,
		DepartmentTechOffice,
		DepartmentProduction:
		return true
	}
	return false
}
