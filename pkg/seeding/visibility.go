package seeding

import (
	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// EffectiveVisibility overlays an animal's privacy overrides onto the
// tenant's lineage-visibility defaults, field by field. Absent override
// fields inherit the tenant default exactly; present fields win
// unconditionally. The result is always fully populated - no unset fields
// reach persistence.
func EffectiveVisibility(defaults models.LineageVisibility, ov *fixtures.VisibilityOverrides) models.LineageVisibility {
	eff := defaults
	if ov == nil {
		return eff
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&eff.ShowAncestorNames, ov.ShowAncestorNames)
	apply(&eff.ShowAncestorPhotos, ov.ShowAncestorPhotos)
	apply(&eff.ShowDatesOfBirth, ov.ShowDatesOfBirth)
	apply(&eff.ShowRegistryIDs, ov.ShowRegistryIDs)
	apply(&eff.ShowHealthTestResults, ov.ShowHealthTestResults)
	apply(&eff.ShowGeneticData, ov.ShowGeneticData)
	apply(&eff.ShowBreederNames, ov.ShowBreederNames)
	apply(&eff.AllowPedigreeInfoRequests, ov.AllowPedigreeInfoRequests)
	apply(&eff.AllowBreederContact, ov.AllowBreederContact)
	apply(&eff.AllowCrossTenantMatching, ov.AllowCrossTenantMatching)

	return eff
}
