package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/cli/config"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/repository/firestore"
	"github.com/tom-tochito/procomply/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var tenantsCfg config.Tenants
	var firestoreProjectID string
	var collectionPrefix string

	flags := tenantsCfg.Flags()
	flags = append(flags, &cli.StringFlag{
		Name:        "firestore-project-id",
		Usage:       "Firestore Project ID (if specified, stored templates are checked too)",
		Sources:     cli.EnvVars("PROCOMPLY_FIRESTORE_PROJECT_ID"),
		Destination: &firestoreProjectID,
	})
	flags = append(flags, &cli.StringFlag{
		Name:        "firestore-collection-prefix",
		Usage:       "Prefix for Firestore collection names",
		Sources:     cli.EnvVars("PROCOMPLY_FIRESTORE_COLLECTION_PREFIX"),
		Destination: &collectionPrefix,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate tenant configuration and optionally check stored templates",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if tenantsCfg.Path() == "" {
				return goerr.New("tenant-config is required")
			}

			registry, err := tenantsCfg.Configure()
			if err != nil {
				color.Red("✗ tenant configuration invalid: %s", tenantsCfg.Path())
				return goerr.Wrap(err, "tenant configuration validation failed")
			}

			tenants := registry.List()
			color.Green("✓ tenant configuration valid: %s (%d tenants)", tenantsCfg.Path(), len(tenants))
			for _, tenant := range tenants {
				fmt.Printf("  %s  %s\n", tenant.ID, tenant.Name)
			}

			if firestoreProjectID == "" {
				logging.Default().Info("No Firestore project ID specified, skipping stored template check")
				return nil
			}

			var opts []firestore.Option
			if collectionPrefix != "" {
				opts = append(opts, firestore.WithCollectionPrefix(collectionPrefix))
			}
			repo, err := firestore.New(ctx, firestoreProjectID, opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize Firestore repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			issues := 0
			for _, tenant := range tenants {
				templates, err := repo.Template().List(ctx, tenant.ID, "")
				if err != nil {
					return goerr.Wrap(err, "failed to list templates",
						goerr.V("tenant_id", tenant.ID))
				}

				for _, tmpl := range templates {
					if err := validateStoredTemplate(tmpl); err != nil {
						issues++
						color.Red("✗ %s/%s (%s): %v", tenant.ID, tmpl.Name, tmpl.ID, err)
						continue
					}
					color.Green("✓ %s/%s (%d fields)", tenant.ID, tmpl.Name, len(tmpl.Fields))
				}
			}

			if issues > 0 {
				return fmt.Errorf("stored template check found %d issue(s)", issues)
			}

			logging.Default().Info("Stored template check passed")
			return nil
		},
	}
}

// validateStoredTemplate re-runs template validation on a stored row and
// additionally flags duplicate keys, which Validate assumes are already
// gone.
func validateStoredTemplate(tmpl *model.Template) error {
	deduped := model.DedupeFields(tmpl.Fields)
	if len(deduped) != len(tmpl.Fields) {
		return goerr.New("template contains duplicate field keys",
			goerr.V("fields", len(tmpl.Fields)), goerr.V("unique", len(deduped)))
	}
	return tmpl.Validate()
}
