// Package credentials renders a human-readable summary of the fixture login
// credentials for one environment. It consumes the Definition Registry and
// the Identity Namer only - it never touches the resolver, sequencer, or
// database.
package credentials

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/seeding"
)

// Render writes one row per tenant: qualified slug, owner email, fixture
// password, and the tenant's default visibility flags.
func Render(w io.Writer, reg *fixtures.Registry) error {
	namer, err := seeding.NewNamer(reg.Environment)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "TENANT\tOWNER EMAIL\tPASSWORD\tVISIBILITY\n")
	for _, t := range reg.Tenants {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			namer.TenantSlug(t.Slug),
			namer.Email(t.Owner.Email),
			t.Owner.Password,
			visibilitySummary(t),
		)
	}
	return tw.Flush()
}

// visibilitySummary compresses the ten default flags into a short
// show/allow listing, e.g. "names,photos,dob | requests,contact".
func visibilitySummary(t fixtures.TenantDefinition) string {
	v := t.Visibility
	shows := ""
	appendIf := func(s *string, cond bool, label string) {
		if !cond {
			return
		}
		if *s != "" {
			*s += ","
		}
		*s += label
	}
	appendIf(&shows, v.ShowAncestorNames, "names")
	appendIf(&shows, v.ShowAncestorPhotos, "photos")
	appendIf(&shows, v.ShowDatesOfBirth, "dob")
	appendIf(&shows, v.ShowRegistryIDs, "registry")
	appendIf(&shows, v.ShowHealthTestResults, "health")
	appendIf(&shows, v.ShowGeneticData, "genetics")
	appendIf(&shows, v.ShowBreederNames, "breeder")

	allows := ""
	appendIf(&allows, v.AllowPedigreeInfoRequests, "requests")
	appendIf(&allows, v.AllowBreederContact, "contact")
	appendIf(&allows, v.AllowCrossTenantMatching, "matching")

	if shows == "" {
		shows = "-"
	}
	if allows == "" {
		allows = "-"
	}
	return shows + " | " + allows
}
