package fixtures

import (
	"time"

	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// prodTenants is the prod-validation partition of the Definition Registry.
// It is a disjoint universe from dev: base slugs may repeat across
// environments (winterfell appears in both) because the Identity Namer
// qualifies every identifier with the environment tag.
func prodTenants() []TenantDefinition {
	return []TenantDefinition{
		{
			Slug:        "winterfell",
			DisplayName: "Winterfell Direwolves",
			Theme:       "winter-slate",
			Marketplace: models.MarketplacePolicy{
				PublicProgram:       true,
				ActiveListings:      true,
				EnabledProgramCount: 1,
				SavedProgramCount:   0,
			},
			Visibility: models.LineageVisibility{
				ShowAncestorNames:         true,
				ShowAncestorPhotos:        true,
				ShowDatesOfBirth:          true,
				ShowRegistryIDs:           true,
				ShowHealthTestResults:     true,
				ShowGeneticData:           false,
				ShowBreederNames:          true,
				AllowPedigreeInfoRequests: true,
				AllowBreederContact:       true,
				AllowCrossTenantMatching:  true,
			},
			Species: []string{"dog"},
			Owner: UserDefinition{
				Email:       "ned@winterfell.example",
				DisplayName: "Eddard Stark",
				Role:        models.RoleOwner,
				Password:    "the-n0rth-remembers",
			},
			Contacts: []ContactDefinition{
				{Name: "Jory Cassel", Email: "jory@winterfell.example"},
			},
			Orgs: []OrganizationDefinition{
				{Name: "Northern Working Dog Registry", PublicProgram: true, MarketplaceSlug: "northern-wdr"},
			},
			Animals: []AnimalDefinition{
				{
					Name: "Grey Wind", Species: "dog", Sex: models.SexMale,
					Breed: "Northern Direwolf", Generation: 0, BirthYear: 2015,
					Genetics: models.GeneticsPayload{
						Health: map[string]string{"HD": "A"},
					},
				},
				{
					Name: "Nymeria", Species: "dog", Sex: models.SexFemale,
					Breed: "Northern Direwolf", Generation: 0, BirthYear: 2015,
				},
				{
					Name: "Ghost", Species: "dog", Sex: models.SexMale,
					Breed: "Northern Direwolf", Generation: 1,
					SireRef: "Grey Wind", DamRef: "Nymeria", BirthYear: 2018,
					Privacy: &VisibilityOverrides{
						ShowGeneticData: flag(true),
					},
				},
			},
			Plans: []BreedingPlanDefinition{
				{
					Name: "North Pairing", Species: "dog",
					DamRef: "Nymeria", SireRef: "Ghost",
					Status:        models.PlanStatusCommitted,
					ExpectedCycle: cycle(2026, time.September, 20),
				},
			},
			Listings: []ListingDefinition{
				{Title: "Winterfell Direwolf Program", Type: models.ListingBreedingProgram, Status: models.ListingStatusActive},
			},
		},
		{
			Slug:        "sunspear",
			DisplayName: "Sunspear Salukis",
			Theme:       "sunspear-red",
			Marketplace: models.MarketplacePolicy{
				PublicProgram:       true,
				ActiveListings:      true,
				EnabledProgramCount: 3,
				SavedProgramCount:   2,
			},
			Visibility: models.LineageVisibility{
				ShowAncestorNames:         true,
				ShowAncestorPhotos:        true,
				ShowDatesOfBirth:          true,
				ShowRegistryIDs:           true,
				ShowHealthTestResults:     false,
				ShowGeneticData:           false,
				ShowBreederNames:          true,
				AllowPedigreeInfoRequests: true,
				AllowBreederContact:       true,
				AllowCrossTenantMatching:  false,
			},
			Species: []string{"dog"},
			Owner: UserDefinition{
				Email:       "oberyn@sunspear.example",
				DisplayName: "Oberyn Martell",
				Role:        models.RoleOwner,
				Password:    "unb0wed-unbent",
			},
			Orgs: []OrganizationDefinition{
				{Name: "Dornish Sighthound Club", PublicProgram: true, MarketplaceSlug: "dornish-sighthounds"},
			},
			Animals: []AnimalDefinition{
				{
					Name: "Viper's Shadow", Species: "dog", Sex: models.SexMale,
					Breed: "Dornish Saluki", Generation: 0, BirthYear: 2017,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"E": "Ee", "B": "Bb"},
						Health:    map[string]string{"PRA": "clear"},
					},
					Titles: []models.Title{
						{Name: "FC", Organization: "Dornish Sighthound Club", Category: "field",
							EarnedAt: time.Date(2021, 2, 7, 0, 0, 0, 0, time.UTC)},
					},
				},
				{
					Name: "Sand Dancer", Species: "dog", Sex: models.SexFemale,
					Breed: "Dornish Saluki", Generation: 0, BirthYear: 2018,
					Genetics: models.GeneticsPayload{
						Health: map[string]string{"PRA": "carrier"},
					},
				},
				{
					Name: "Desert Wind", Species: "dog", Sex: models.SexFemale,
					Breed: "Dornish Saluki", Generation: 1,
					SireRef: "Viper's Shadow", DamRef: "Sand Dancer",
					BirthYear: 2021,
					Privacy: &VisibilityOverrides{
						ShowHealthTestResults: flag(true),
						ShowGeneticData:       flag(true),
					},
				},
			},
			Plans: []BreedingPlanDefinition{
				{
					Name: "Dune Litter", Species: "dog",
					DamRef: "Desert Wind", SireRef: "Viper's Shadow",
					// Sire x daughter: annotated COI band 25%, used to
					// validate the platform's inbreeding warnings by hand.
					Status: models.PlanStatusPlanning,
				},
			},
			Listings: []ListingDefinition{
				{Title: "Sunspear Saluki Program", Type: models.ListingBreedingProgram, Status: models.ListingStatusActive},
				{Title: "Viper's Shadow at Stud", Type: models.ListingStudService, Status: models.ListingStatusActive},
			},
		},
	}
}
