package models

import (
	"time"

	"github.com/google/uuid"
)

// Animal represents a persisted animal row. Name is unique within its
// tenant and environment; SireID/DamID are foreign keys into the same
// tenant's animal rows, populated ancestor-first by the seeding pipeline.
type Animal struct {
	ID           uuid.UUID         `json:"id"`
	TenantID     uuid.UUID         `json:"tenant_id"`
	Environment  string            `json:"environment"`
	Name         string            `json:"name"`
	Species      string            `json:"species"`
	Sex          string            `json:"sex"`
	Breed        string            `json:"breed"`
	Generation   int               `json:"generation"`
	SireID       *uuid.UUID        `json:"sire_id,omitempty"`
	DamID        *uuid.UUID        `json:"dam_id,omitempty"`
	BirthYear    int               `json:"birth_year"`
	Genetics     GeneticsPayload   `json:"genetics"`
	Titles       []Title           `json:"titles,omitempty"`
	Competitions []Competition     `json:"competitions,omitempty"`
	Visibility   LineageVisibility `json:"visibility"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Sex constants.
const (
	SexMale   = "MALE"
	SexFemale = "FEMALE"
)

// IsValidSex checks if the given sex is valid.
func IsValidSex(sex string) bool {
	return sex == SexMale || sex == SexFemale
}

// GeneticsPayload holds named locus genotypes grouped by trait category.
// The values are test scenarios for downstream genetics features; nothing in
// this system computes with them.
type GeneticsPayload struct {
	CoatColor map[string]string `json:"coat_color,omitempty"`
	CoatType  map[string]string `json:"coat_type,omitempty"`
	Health    map[string]string `json:"health,omitempty"`
	Physical  map[string]string `json:"physical,omitempty"`
}

// Title is an earned title, ordered by date earned.
type Title struct {
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	Category     string    `json:"category"`
	EarnedAt     time.Time `json:"earned_at"`
}

// Competition is a single competition entry.
type Competition struct {
	Event     string    `json:"event"`
	Placement string    `json:"placement"`
	HeldAt    time.Time `json:"held_at"`
}
