// Package seeding implements the fixture-graph resolution and idempotent
// seeding pipeline: identity naming, name-reference resolution, generation
// sequencing, visibility merging, and the per-tenant upsert orchestration.
package seeding

import (
	"fmt"
)

// DefinitionError reports a structural authoring mistake in the Definition
// Registry: a dangling sire/dam reference, a generation-ordering violation,
// a sex mismatch, or a reference cycle. It is fatal to the whole
// environment run and is always raised before any database write.
type DefinitionError struct {
	Tenant    string
	Entity    string
	Reference string
	Reason    string
}

func (e *DefinitionError) Error() string {
	if e.Reference != "" {
		return fmt.Sprintf("definition error in tenant %q: entity %q reference %q: %s",
			e.Tenant, e.Entity, e.Reference, e.Reason)
	}
	return fmt.Sprintf("definition error in tenant %q: entity %q: %s",
		e.Tenant, e.Entity, e.Reason)
}

// IdentityCollisionError reports two distinct base identifiers in the same
// environment qualifying to the same stable identifier. Fatal; reported
// before any write occurs.
type IdentityCollisionError struct {
	Environment string
	Qualified   string
	First       string
	Second      string
}

func (e *IdentityCollisionError) Error() string {
	return fmt.Sprintf("identity collision in environment %q: %q and %q both qualify to %q",
		e.Environment, e.First, e.Second, e.Qualified)
}

// PersistenceError reports a rejected write during upsert. It aborts the
// current tenant's remaining upserts only; other tenants are unaffected and
// the write is never retried automatically.
type PersistenceError struct {
	Environment string
	Tenant      string
	EntityType  string
	Name        string
	Err         error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error in %s/%s: %s %q: %v",
		e.Environment, e.Tenant, e.EntityType, e.Name, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
