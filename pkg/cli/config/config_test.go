package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/cli/config"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// commandWithFlags parses args through a throwaway command so the flag
// destinations get populated.
func commandWithFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func writeTenantsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenants.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadTenantRegistry(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeTenantsFile(t, `
[[tenant]]
id = "acme-props"
name = "Acme Properties"

[[tenant]]
id = "northgate"
name = "Northgate Estates"
`)
		registry := gt.R1(config.LoadTenantRegistry(path)).NoError(t)

		tenants := registry.List()
		gt.A(t, tenants).Length(2)
		gt.Value(t, tenants[0].ID).Equal(types.TenantID("acme-props"))
		gt.Value(t, tenants[1].Name).Equal("Northgate Estates")
	})

	t.Run("declaration order preserved", func(t *testing.T) {
		path := writeTenantsFile(t, `
[[tenant]]
id = "zeta"
name = "Zeta"

[[tenant]]
id = "alpha"
name = "Alpha"
`)
		registry := gt.R1(config.LoadTenantRegistry(path)).NoError(t)
		tenants := registry.List()
		gt.Value(t, tenants[0].ID).Equal(types.TenantID("zeta"))
		gt.Value(t, tenants[1].ID).Equal(types.TenantID("alpha"))
	})

	t.Run("duplicate tenant ID rejected", func(t *testing.T) {
		path := writeTenantsFile(t, `
[[tenant]]
id = "acme"
name = "First"

[[tenant]]
id = "acme"
name = "Second"
`)
		_, err := config.LoadTenantRegistry(path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrDuplicateTenantID)).True()
	})

	t.Run("missing name rejected", func(t *testing.T) {
		path := writeTenantsFile(t, `
[[tenant]]
id = "acme"
`)
		_, err := config.LoadTenantRegistry(path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrMissingTenantName)).True()
	})

	t.Run("malformed tenant ID rejected", func(t *testing.T) {
		path := writeTenantsFile(t, `
[[tenant]]
id = "Not Valid"
name = "Broken"
`)
		_, err := config.LoadTenantRegistry(path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadTenantRegistry(filepath.Join(t.TempDir(), "nope.toml"))
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrConfigNotFound)).True()
	})

	t.Run("broken TOML", func(t *testing.T) {
		path := writeTenantsFile(t, `[[tenant]`)
		_, err := config.LoadTenantRegistry(path)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
	})
}

func TestRepositoryConfigure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		var cfg config.Repository
		commandWithFlags(t, cfg.Flags(), "--repository-backend", "memory")

		repo := gt.R1(cfg.Configure(context.Background())).NoError(t)
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore without project ID", func(t *testing.T) {
		var cfg config.Repository
		commandWithFlags(t, cfg.Flags(), "--repository-backend", "firestore")

		_, err := cfg.Configure(context.Background())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrMissingProjectID)).True()
	})

	t.Run("unknown backend", func(t *testing.T) {
		var cfg config.Repository
		commandWithFlags(t, cfg.Flags(), "--repository-backend", "dynamo")

		_, err := cfg.Configure(context.Background())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrUnknownBackend)).True()
	})
}

func TestStorageConfigure(t *testing.T) {
	t.Run("none means no storage", func(t *testing.T) {
		var cfg config.Storage
		commandWithFlags(t, cfg.Flags())

		store, err := cfg.Configure(context.Background())
		gt.NoError(t, err)
		gt.Value(t, store).Nil()
	})

	t.Run("memory backend", func(t *testing.T) {
		var cfg config.Storage
		commandWithFlags(t, cfg.Flags(), "--storage-backend", "memory")

		store := gt.R1(cfg.Configure(context.Background())).NoError(t)
		gt.NoError(t, store.Close())
	})

	t.Run("gcs without bucket", func(t *testing.T) {
		var cfg config.Storage
		commandWithFlags(t, cfg.Flags(), "--storage-backend", "gcs")

		_, err := cfg.Configure(context.Background())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrMissingBucket)).True()
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg config.Logger
		commandWithFlags(t, cfg.Flags())

		closer := gt.R1(cfg.Configure()).NoError(t)
		closer()
	})

	t.Run("invalid level", func(t *testing.T) {
		var cfg config.Logger
		commandWithFlags(t, cfg.Flags(), "--log-level", "verbose")

		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		var cfg config.Logger
		commandWithFlags(t, cfg.Flags(), "--log-format", "xml")

		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}
