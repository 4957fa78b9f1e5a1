// Command fixture-seeder populates the PedigreeHQ validation environments
// with fixture data: tenants, users, contacts, organizations, animals with
// resolved pedigrees, breeding plans, and marketplace listings.
//
// Usage:
//
//	fixture-seeder migrate -env dev
//	fixture-seeder seed -env dev
//	fixture-seeder credentials -env dev
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for migrations
	"go.uber.org/zap"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/config"
	"github.com/pedigreehq/fixture-seeder/pkg/credentials"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/logging"
	"github.com/pedigreehq/fixture-seeder/pkg/repositories"
	"github.com/pedigreehq/fixture-seeder/pkg/seeding"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fixture-seeder: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: fixture-seeder <seed|credentials|migrate> [-env dev|prod]")
	}

	cmd, rest := args[0], args[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	envFlag := fs.String("env", "", "target environment (dev or prod); overrides config")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	cfg, err := config.Load(Version)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *envFlag != "" {
		cfg.Env = *envFlag
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	switch cmd {
	case "seed":
		return runSeed(cfg, logger)
	case "credentials":
		return runCredentials(cfg)
	case "migrate":
		return runMigrate(cfg, logger)
	default:
		return fmt.Errorf("unknown command %q (want seed, credentials, or migrate)", cmd)
	}
}

func buildLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	if err := zc.Level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}
	return zc.Build()
}

// runSeed drives the Tenant Orchestrator for every tenant in the selected
// environment.
func runSeed(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	reg, err := fixtures.ForEnvironment(cfg.Env)
	if err != nil {
		return err
	}

	logger.Info("Connecting to database",
		zap.String("environment", cfg.Env),
		zap.String("dsn", logging.SanitizeConnectionString(cfg.Database.ConnectionString())))

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		return fmt.Errorf("connect database: %s", logging.SanitizeError(err))
	}
	defer db.Close()

	orch := seeding.NewOrchestrator(db, seeding.Repositories{
		Tenants:  repositories.NewTenantRepository(),
		Users:    repositories.NewUserRepository(),
		Contacts: repositories.NewContactRepository(),
		Orgs:     repositories.NewOrganizationRepository(),
		Animals:  repositories.NewAnimalRepository(),
		Plans:    repositories.NewBreedingPlanRepository(),
		Listings: repositories.NewListingRepository(),
	}, logger)

	report, err := orch.Run(ctx, reg)
	if err != nil {
		return err
	}

	printReport(report)
	if report.Failed() {
		return fmt.Errorf("%w: one or more tenants failed in %s", apperrors.ErrTenantAborted, report.Environment)
	}
	return nil
}

func printReport(report *seeding.Report) {
	fmt.Printf("Environment %s:\n", report.Environment)
	for _, t := range report.Tenants {
		if t.Err != nil {
			fmt.Printf("  %-24s FAILED: %v\n", t.Slug, t.Err)
			continue
		}
		fmt.Printf("  %-24s ok (%d animals, %d plans, %d listings)\n",
			t.Slug, t.Animals, t.Plans, t.Listings)
	}
}

// runCredentials renders the read-only credential summary. It performs no
// writes and never opens a database connection.
func runCredentials(cfg *config.Config) error {
	reg, err := fixtures.ForEnvironment(cfg.Env)
	if err != nil {
		return err
	}
	return credentials.Render(os.Stdout, reg)
}

func runMigrate(cfg *config.Config, logger *zap.Logger) error {
	db, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return database.RunMigrations(db, cfg.MigrationsPath, logger)
}
