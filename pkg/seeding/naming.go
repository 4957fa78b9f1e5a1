package seeding

import (
	"fmt"
	"strings"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// Namer derives environment-qualified stable identifiers from base
// definitions. The mapping is a pure, deterministic transformation; the two
// environments therefore occupy disjoint natural-key namespaces. Injectivity
// across (environment, base identifier) is verified by CheckCollisions
// before any write.
type Namer struct {
	env string
}

// NewNamer returns a Namer for the given environment.
func NewNamer(env string) (Namer, error) {
	if !models.IsValidEnvironment(env) {
		return Namer{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownEnv, env)
	}
	return Namer{env: env}, nil
}

// Environment returns the environment tag this namer qualifies for.
func (n Namer) Environment() string { return n.env }

// TenantSlug qualifies a base tenant slug: "rivendell" -> "rivendell-dev".
func (n Namer) TenantSlug(base string) string {
	return base + "-" + n.env
}

// Email qualifies a base email using plus-addressing on the local part:
// "elrond@rivendell.example" -> "elrond+dev@rivendell.example".
// Emails without an @ are qualified like slugs.
func (n Namer) Email(base string) string {
	at := strings.LastIndex(base, "@")
	if at < 0 {
		return base + "-" + n.env
	}
	return base[:at] + "+" + n.env + base[at:]
}

// OrgSlug qualifies an organization marketplace slug.
func (n Namer) OrgSlug(base string) string {
	if base == "" {
		return ""
	}
	return base + "-" + n.env
}

// CheckCollisions verifies that qualification is injective over the whole
// registry partition: no two distinct base tenant slugs, marketplace slugs,
// or user emails in this environment may map to the same qualified
// identifier. Animal, plan, contact, and organization names are scoped to
// their tenant and are checked by the resolver instead.
func (n Namer) CheckCollisions(reg *fixtures.Registry) error {
	slugs := make(map[string]string)
	emails := make(map[string]string)
	orgSlugs := make(map[string]string)

	for _, t := range reg.Tenants {
		q := n.TenantSlug(t.Slug)
		if prev, ok := slugs[q]; ok {
			return &IdentityCollisionError{Environment: n.env, Qualified: q, First: prev, Second: t.Slug}
		}
		slugs[q] = t.Slug

		qe := n.Email(t.Owner.Email)
		if prev, ok := emails[qe]; ok {
			return &IdentityCollisionError{Environment: n.env, Qualified: qe, First: prev, Second: t.Owner.Email}
		}
		emails[qe] = t.Owner.Email

		for _, org := range t.Orgs {
			if org.MarketplaceSlug == "" {
				continue
			}
			qo := n.OrgSlug(org.MarketplaceSlug)
			if prev, ok := orgSlugs[qo]; ok {
				return &IdentityCollisionError{Environment: n.env, Qualified: qo, First: prev, Second: org.MarketplaceSlug}
			}
			orgSlugs[qo] = org.MarketplaceSlug
		}
	}

	return nil
}
