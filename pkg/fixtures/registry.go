package fixtures

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// Registry is one environment's partition of the Definition Registry.
// Registries are plain values threaded through constructors, never
// package-level mutable state, so both environments can be loaded side by
// side (e.g. in tests) without interference.
type Registry struct {
	Environment string
	Tenants     []TenantDefinition
	Themes      map[string]Theme
}

// Theme is static presentation data attached to a tenant. It carries no
// engineering behavior; the platform UI consumes it as-is.
type Theme struct {
	Label     string `yaml:"label"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent    string `yaml:"accent"`
}

//go:embed themes.yaml
var themesYAML []byte

// ForEnvironment returns the Definition Registry partition for env.
// The returned value is freshly built on every call so callers can never
// mutate shared state.
func ForEnvironment(env string) (*Registry, error) {
	var tenants []TenantDefinition
	switch env {
	case models.EnvDev:
		tenants = devTenants()
	case models.EnvProd:
		tenants = prodTenants()
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownEnv, env)
	}

	themes, err := loadThemes()
	if err != nil {
		return nil, err
	}

	reg := &Registry{
		Environment: env,
		Tenants:     tenants,
		Themes:      themes,
	}

	for _, t := range reg.Tenants {
		if _, ok := themes[t.Theme]; !ok {
			return nil, fmt.Errorf("%w: tenant %q references unknown theme %q",
				apperrors.ErrInvalidRegistry, t.Slug, t.Theme)
		}
	}

	return reg, nil
}

// TenantBySlug returns the tenant definition with the given base slug.
func (r *Registry) TenantBySlug(slug string) (*TenantDefinition, bool) {
	for i := range r.Tenants {
		if r.Tenants[i].Slug == slug {
			return &r.Tenants[i], true
		}
	}
	return nil, false
}

func loadThemes() (map[string]Theme, error) {
	themes := make(map[string]Theme)
	if err := yaml.Unmarshal(themesYAML, &themes); err != nil {
		return nil, fmt.Errorf("parse embedded themes.yaml: %w", err)
	}
	return themes, nil
}
