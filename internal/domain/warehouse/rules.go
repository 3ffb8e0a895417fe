package warehouse

// Rules parameterizes ledger behavior per tenant/deployment without code
// changes. Implementations are injected by the composition root, hold no
// mutable state and are safe for concurrent use. All predicates are total:
// they return a boolean for any input and never fail.
type Rules interface {
	// RequireJobOrderOnPick reports whether Pick must receive a job order
	RequireJobOrderOnPick() bool

	// QuarantineRestockAllowed reports the quarantine restock policy flag.
	// When true the quarantine decision pathway is rejected outright; see
	// LedgerService.QuarantineDecision.
	QuarantineRestockAllowed() bool

	// IsPickable reports whether lots in the given status may be picked
	IsPickable(status LotStatus) bool

	// IsLotAllowedForJob reports whether a lot in the given condition may be
	// assigned to the given job type
	IsLotAllowedForJob(jobType string, condition LotCondition) bool
}

// StaticRules is a fixed-configuration Rules implementation.
type StaticRules struct {
	RequireJobOrder  bool
	RestockAllowed   bool
	PickableStatuses map[LotStatus]bool
	// AllowedConditionsByJob restricts lot conditions per job type; a job
	// type absent from the map accepts any condition.
	AllowedConditionsByJob map[string][]LotCondition
}

// DefaultRules returns the standard warehouse policy: picks require a job
// order, only AVAILABLE lots are pickable, direct restock from quarantine is
// disabled and every job type accepts any lot condition.
func DefaultRules() *StaticRules {
	return &StaticRules{
		RequireJobOrder: true,
		RestockAllowed:  false,
		PickableStatuses: map[LotStatus]bool{
			LotStatusAvailable: true,
		},
	}
}

// RequireJobOrderOnPick implements Rules
func (r *StaticRules) RequireJobOrderOnPick() bool {
	return r.RequireJobOrder
}

// QuarantineRestockAllowed implements Rules
func (r *StaticRules) QuarantineRestockAllowed() bool {
	return r.RestockAllowed
}

// IsPickable implements Rules
func (r *StaticRules) IsPickable(status LotStatus) bool {
	return r.PickableStatuses[status]
}

// IsLotAllowedForJob implements Rules
func (r *StaticRules) IsLotAllowedForJob(jobType string, condition LotCondition) bool {
	allowed, ok := r.AllowedConditionsByJob[jobType]
	if !ok {
		return true
	}
	for _, c := range allowed {
		if c == condition {
			return true
		}
	}
	return false
}

var _ Rules = (*StaticRules)(nil)
