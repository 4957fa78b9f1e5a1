package models

// LineageVisibility is the set of ten independent flags controlling which
// pedigree, health, and genetic fields a tenant exposes to other tenants or
// the public. Every persisted animal carries a fully-populated copy: tenant
// defaults overlaid with any per-animal overrides, no unset fields remaining.
type LineageVisibility struct {
	ShowAncestorNames         bool `json:"show_ancestor_names"`
	ShowAncestorPhotos        bool `json:"show_ancestor_photos"`
	ShowDatesOfBirth          bool `json:"show_dates_of_birth"`
	ShowRegistryIDs           bool `json:"show_registry_ids"`
	ShowHealthTestResults     bool `json:"show_health_test_results"`
	ShowGeneticData           bool `json:"show_genetic_data"`
	ShowBreederNames          bool `json:"show_breeder_names"`
	AllowPedigreeInfoRequests bool `json:"allow_pedigree_info_requests"`
	AllowBreederContact       bool `json:"allow_breeder_contact"`
	AllowCrossTenantMatching  bool `json:"allow_cross_tenant_matching"`
}
