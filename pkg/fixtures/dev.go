package fixtures

import (
	"time"

	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// devTenants is the dev-environment partition of the Definition Registry.
// Animals are authored ancestor-first for readability, but the pipeline
// orders them by their reference edges, not by their position here.
func devTenants() []TenantDefinition {
	return []TenantDefinition{
		{
			Slug:        "rivendell",
			DisplayName: "Rivendell Hounds",
			Theme:       "evergreen",
			Marketplace: models.MarketplacePolicy{
				PublicProgram:       true,
				ActiveListings:      true,
				EnabledProgramCount: 2,
				SavedProgramCount:   1,
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
				Email:       "elrond@rivendell.example",
				DisplayName: "Elrond Halfelven",
				Role:        models.RoleOwner,
				Password:    "mellon-9-hounds",
			},
			Contacts: []ContactDefinition{
				{Name: "Lindir", Email: "lindir@rivendell.example", Phone: "+44 700 900001", Notes: "handles stud inquiries"},
				{Name: "Glorfindel", Email: "glorfindel@rivendell.example", Phone: "+44 700 900002"},
			},
			Orgs: []OrganizationDefinition{
				{Name: "Eriador Kennel Club", PublicProgram: true, MarketplaceSlug: "eriador-kc"},
				{Name: "Grey Havens Registry"},
			},
			Animals: []AnimalDefinition{
				{
					Name: "Huan the Great", Species: "dog", Sex: models.SexMale,
					Breed: "Valinor Wolfhound", Generation: 0, BirthYear: 2016,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"B": "BB", "E": "Ee"},
						Health:    map[string]string{"PRA": "clear", "DM": "clear"},
						Physical:  map[string]string{"size": "LL"},
					},
					Titles: []models.Title{
						{Name: "CH", Organization: "Eriador Kennel Club", Category: "conformation",
							EarnedAt: time.Date(2019, 5, 12, 0, 0, 0, 0, time.UTC)},
						{Name: "GCH", Organization: "Eriador Kennel Club", Category: "conformation",
							EarnedAt: time.Date(2020, 9, 3, 0, 0, 0, 0, time.UTC)},
					},
					Competitions: []models.Competition{
						{Event: "Bruinen Open", Placement: "Best in Show",
							HeldAt: time.Date(2020, 9, 3, 0, 0, 0, 0, time.UTC)},
					},
				},
				{
					Name: "Luthien Tinuviel", Species: "dog", Sex: models.SexFemale,
					Breed: "Valinor Wolfhound", Generation: 0, BirthYear: 2017,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"B": "Bb", "E": "EE"},
						Health:    map[string]string{"PRA": "carrier", "DM": "clear"},
					},
				},
				{
					Name: "Nellas of the Glade", Species: "dog", Sex: models.SexFemale,
					Breed: "Valinor Wolfhound", Generation: 0, BirthYear: 2017,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"B": "bb", "E": "Ee"},
						Health:    map[string]string{"PRA": "clear", "DM": "carrier"},
					},
				},
				{
					// Huan x Luthien. PRA clear x carrier: no affected
					// offspring expected; annotated COI band for manual
					// testers is 0% (unrelated founders).
					Name: "Carcharoth", Species: "dog", Sex: models.SexMale,
					Breed: "Valinor Wolfhound", Generation: 1,
					SireRef: "Huan the Great", DamRef: "Luthien Tinuviel",
					BirthYear: 2019,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"B": "Bb", "E": "Ee"},
						Health:    map[string]string{"PRA": "carrier", "DM": "clear"},
					},
					Privacy: &VisibilityOverrides{
						ShowGeneticData:       flag(true),
						ShowHealthTestResults: flag(true),
					},
				},
				{
					Name: "Nimloth's Grace", Species: "dog", Sex: models.SexFemale,
					Breed: "Valinor Wolfhound", Generation: 1,
					SireRef: "Huan the Great", DamRef: "Nellas of the Glade",
					BirthYear: 2020,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"B": "Bb", "E": "Ee"},
						Health:    map[string]string{"PRA": "clear", "DM": "carrier"},
					},
					Privacy: &VisibilityOverrides{
						ShowDatesOfBirth: flag(false),
					},
				},
				{
					// Half-sibling pairing: annotated COI band 12.5%.
					Name: "Beren's Companion", Species: "dog", Sex: models.SexMale,
					Breed: "Valinor Wolfhound", Generation: 2,
					SireRef: "Carcharoth", DamRef: "Nimloth's Grace",
					BirthYear: 2022,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"B": "Bb", "E": "Ee"},
						Health:    map[string]string{"PRA": "carrier", "DM": "carrier"},
					},
				},
			},
			Plans: []BreedingPlanDefinition{
				{
					Name: "Spring Litter 2026", Species: "dog",
					DamRef: "Nimloth's Grace", SireRef: "Huan the Great",
					Status:        models.PlanStatusPlanning,
					ExpectedCycle: cycle(2026, time.March, 14),
				},
				{
					// Carrier x carrier on DM: manual testers expect a
					// health-risk warning on this pairing.
					Name: "Autumn Litter 2026", Species: "dog",
					DamRef: "Nellas of the Glade", SireRef: "Beren's Companion",
					Status: models.PlanStatusCommitted,
				},
			},
			Listings: []ListingDefinition{
				{Title: "Rivendell Wolfhound Program", Type: models.ListingBreedingProgram, Status: models.ListingStatusActive},
				{Title: "Huan the Great at Stud", Type: models.ListingStudService, Status: models.ListingStatusActive},
			},
		},
		{
			Slug:        "winterfell",
			DisplayName: "Winterfell Direwolves",
			Theme:       "winter-slate",
			Marketplace: models.MarketplacePolicy{
				PublicProgram:       false,
				ActiveListings:      false,
				EnabledProgramCount: 0,
				SavedProgramCount:   3,
			},
			Visibility: models.LineageVisibility{
				ShowAncestorNames:         true,
				ShowAncestorPhotos:        false,
				ShowDatesOfBirth:          false,
				ShowRegistryIDs:           false,
				ShowHealthTestResults:     false,
				ShowGeneticData:           false,
				ShowBreederNames:          false,
				AllowPedigreeInfoRequests: false,
				AllowBreederContact:       false,
				AllowCrossTenantMatching:  false,
			},
			Species: []string{"dog"},
			Owner: UserDefinition{
				Email:       "ned@winterfell.example",
				DisplayName: "Eddard Stark",
				Role:        models.RoleOwner,
				Password:    "winter-is-c0ming",
			},
			Contacts: []ContactDefinition{
				{Name: "Maester Luwin", Email: "luwin@winterfell.example", Notes: "health records keeper"},
			},
			Orgs: []OrganizationDefinition{
				{Name: "Northern Working Dog Registry"},
			},
			Animals: []AnimalDefinition{
				{
					Name: "Grey Wind", Species: "dog", Sex: models.SexMale,
					Breed: "Northern Direwolf", Generation: 0, BirthYear: 2015,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"K": "KBk"},
						Health:    map[string]string{"HD": "A"},
					},
				},
				{
					Name: "Nymeria", Species: "dog", Sex: models.SexFemale,
					Breed: "Northern Direwolf", Generation: 0, BirthYear: 2015,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"K": "Kbrkbr"},
						Health:    map[string]string{"HD": "B"},
					},
				},
				{
					Name: "Lady", Species: "dog", Sex: models.SexFemale,
					Breed: "Northern Direwolf", Generation: 0, BirthYear: 2016,
					Genetics: models.GeneticsPayload{
						Health: map[string]string{"HD": "A"},
					},
				},
				{
					Name: "Ghost", Species: "dog", Sex: models.SexMale,
					Breed: "Northern Direwolf", Generation: 1,
					SireRef: "Grey Wind", DamRef: "Nymeria", BirthYear: 2018,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"K": "kyky", "S": "ss"},
						Health:    map[string]string{"HD": "A"},
					},
					Privacy: &VisibilityOverrides{
						ShowAncestorNames: flag(false),
					},
				},
				{
					Name: "Shaggydog", Species: "dog", Sex: models.SexMale,
					Breed: "Northern Direwolf", Generation: 1,
					SireRef: "Grey Wind", DamRef: "Lady", BirthYear: 2019,
				},
				{
					// Half-sibling parents via Grey Wind: annotated COI
					// band 12.5%.
					Name: "Winter's Heir", Species: "dog", Sex: models.SexFemale,
					Breed: "Northern Direwolf", Generation: 2,
					SireRef: "Ghost", DamRef: "Lady", BirthYear: 2021,
				},
			},
			Plans: []BreedingPlanDefinition{
				{
					Name: "Direwolf Pairing", Species: "dog",
					DamRef: "Winter's Heir", SireRef: "Shaggydog",
					Status:        models.PlanStatusPlanning,
					ExpectedCycle: cycle(2026, time.November, 2),
				},
			},
			Listings: []ListingDefinition{
				{Title: "Winterfell Program (private)", Type: models.ListingBreedingProgram, Status: models.ListingStatusDraft},
			},
		},
		{
			Slug:        "bree-stables",
			DisplayName: "Bree Pony Stables",
			Theme:       "autumn-gold",
			Marketplace: models.MarketplacePolicy{
				PublicProgram:       true,
				ActiveListings:      false,
				EnabledProgramCount: 1,
				SavedProgramCount:   0,
			},
			Visibility: models.LineageVisibility{
				ShowAncestorNames:         true,
				ShowAncestorPhotos:        true,
				ShowDatesOfBirth:          true,
				ShowRegistryIDs:           false,
				ShowHealthTestResults:     true,
				ShowGeneticData:           true,
				ShowBreederNames:          true,
				AllowPedigreeInfoRequests: true,
				AllowBreederContact:       false,
				AllowCrossTenantMatching:  false,
			},
			Species: []string{"horse"},
			Owner: UserDefinition{
				Email:       "barliman@bree.example",
				DisplayName: "Barliman Butterbur",
				Role:        models.RoleOwner,
				Password:    "prancing-p0ny",
			},
			Orgs: []OrganizationDefinition{
				{Name: "Breeland Pony Society", PublicProgram: true, MarketplaceSlug: "breeland-ponies"},
			},
			Animals: []AnimalDefinition{
				{
					Name: "Bill the Pony", Species: "horse", Sex: models.SexMale,
					Breed: "Breeland Pony", Generation: 0, BirthYear: 2014,
					Genetics: models.GeneticsPayload{
						CoatColor: map[string]string{"E": "ee", "A": "Aa"},
						Physical:  map[string]string{"height": "hh"},
					},
				},
				{
					Name: "Fatty Lumpkin", Species: "horse", Sex: models.SexFemale,
					Breed: "Breeland Pony", Generation: 0, BirthYear: 2015,
				},
				{
					Name: "Strider's Mount", Species: "horse", Sex: models.SexMale,
					Breed: "Breeland Pony", Generation: 1,
					SireRef: "Bill the Pony", DamRef: "Fatty Lumpkin",
					BirthYear: 2019,
					Competitions: []models.Competition{
						{Event: "Chetwood Trials", Placement: "2nd",
							HeldAt: time.Date(2023, 6, 18, 0, 0, 0, 0, time.UTC)},
					},
				},
			},
			Listings: []ListingDefinition{
				{Title: "Breeland Pony Program", Type: models.ListingBreedingProgram, Status: models.ListingStatusPaused},
			},
		},
	}
}
