package models

import (
	"time"

	"github.com/google/uuid"
)

// BreedingPlan represents a persisted breeding plan row. DamID and SireID
// reference animal rows in the same tenant; the referenced animals must
// already exist when the plan is written.
type BreedingPlan struct {
	ID            uuid.UUID  `json:"id"`
	TenantID      uuid.UUID  `json:"tenant_id"`
	Environment   string     `json:"environment"`
	Name          string     `json:"name"`
	Species       string     `json:"species"`
	DamID         uuid.UUID  `json:"dam_id"`
	SireID        uuid.UUID  `json:"sire_id"`
	Status        string     `json:"status"`
	ExpectedCycle *time.Time `json:"expected_cycle,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Plan status constants. Only these two states are ever seeded.
const (
	PlanStatusPlanning  = "PLANNING"
	PlanStatusCommitted = "COMMITTED"
)

// IsValidPlanStatus checks if the given plan status is valid.
func IsValidPlanStatus(status string) bool {
	return status == PlanStatusPlanning || status == PlanStatusCommitted
}
