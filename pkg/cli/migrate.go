package cli

import (
	"context"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var collectionPrefix string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("PROCOMPLY_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-collection-prefix",
				Usage:       "Prefix for Firestore collection names",
				Sources:     cli.EnvVars("PROCOMPLY_FIRESTORE_COLLECTION_PREFIX"),
				Destination: &collectionPrefix,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Preview changes without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"collectionPrefix", collectionPrefix,
				"dryRun", dryRun)

			indexConfig := getIndexConfig(collectionPrefix)

			client, err := fireconf.NewClient(ctx, projectID, "")
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}
			defer func() {
				if err := client.Close(); err != nil {
					logger.Error("failed to close fireconf client", "error", err.Error())
				}
			}()

			if dryRun {
				logger.Info("Dry run mode - previewing changes")
				plan, err := client.GetMigrationPlan(ctx, indexConfig)
				if err != nil {
					return goerr.Wrap(err, "failed to create migration plan")
				}

				if len(plan.Steps) == 0 {
					logger.Info("No changes required")
					return nil
				}

				for _, step := range plan.Steps {
					logger.Info("Migration step",
						"collection", step.Collection,
						"operation", step.Operation,
						"description", step.Description,
						"destructive", step.Destructive)
				}
			} else {
				logger.Info("Applying migrations")
				if err := client.Migrate(ctx, indexConfig); err != nil {
					return goerr.Wrap(err, "failed to apply migrations")
				}
				logger.Info("Migrations applied successfully")
			}

			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration. Single-field
// tenant scoping is covered by automatic indexes; composite indexes are
// needed for the per-building listings, the template-reference checks and
// the entity-filtered template listing.
func getIndexConfig(prefix string) *fireconf.Config {
	name := func(base string) string {
		if prefix != "" {
			return prefix + "_" + base
		}
		return base
	}

	tenantAnd := func(second string) fireconf.Index {
		return fireconf.Index{
			Fields: []fireconf.IndexField{
				{Path: "TenantID", Order: fireconf.OrderAscending},
				{Path: second, Order: fireconf.OrderAscending},
			},
		}
	}

	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: name("templates"),
				Indexes: []fireconf.Index{
					// List filtered by entity classification
					tenantAnd("Entity"),
				},
			},
			{
				Name: name("buildings"),
				Indexes: []fireconf.Index{
					tenantAnd("TemplateID"),
				},
			},
			{
				Name: name("tasks"),
				Indexes: []fireconf.Index{
					tenantAnd("BuildingID"),
					tenantAnd("TemplateID"),
				},
			},
			{
				Name: name("documents"),
				Indexes: []fireconf.Index{
					tenantAnd("BuildingID"),
					tenantAnd("TemplateID"),
				},
			},
			{
				Name: name("inspections"),
				Indexes: []fireconf.Index{
					tenantAnd("BuildingID"),
					tenantAnd("TemplateID"),
				},
			},
			{
				Name: name("notes"),
				Indexes: []fireconf.Index{
					tenantAnd("BuildingID"),
				},
			},
		},
	}
}
