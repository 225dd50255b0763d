package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// TenantEntry is one tenant declaration in the configuration file
type TenantEntry struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// Validate checks if the tenant entry is valid
func (t *TenantEntry) Validate() error {
	if err := types.TenantID(t.ID).Validate(); err != nil {
		return goerr.Wrap(err, "invalid tenant ID", goerr.V(TenantIDKey, t.ID))
	}
	if t.Name == "" {
		return goerr.Wrap(ErrMissingTenantName, "invalid tenant entry",
			goerr.V(TenantIDKey, t.ID))
	}
	return nil
}

// TenantsFile is the top-level shape of the tenant configuration file
type TenantsFile struct {
	Tenants []TenantEntry `toml:"tenant"`
}

// Validate checks every entry and rejects duplicate IDs
func (f *TenantsFile) Validate() error {
	seen := make(map[string]bool, len(f.Tenants))
	for _, entry := range f.Tenants {
		if err := entry.Validate(); err != nil {
			return err
		}
		if seen[entry.ID] {
			return goerr.Wrap(ErrDuplicateTenantID, "invalid tenant configuration",
				goerr.V(TenantIDKey, entry.ID))
		}
		seen[entry.ID] = true
	}
	return nil
}

// Tenants holds CLI flags for tenant declaration
type Tenants struct {
	path string
}

// Flags returns CLI flags for tenant configuration
func (t *Tenants) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tenant-config",
			Usage:       "Path to tenant configuration TOML file (when omitted, any well-formed tenant ID is accepted)",
			Sources:     cli.EnvVars("PROCOMPLY_TENANT_CONFIG"),
			Destination: &t.path,
		},
	}
}

// Path returns the configured file path
func (t *Tenants) Path() string {
	return t.path
}

// Configure loads and validates the tenant configuration file. A nil
// registry with nil error means no file was configured.
func (t *Tenants) Configure() (*model.TenantRegistry, error) {
	if t.path == "" {
		return nil, nil
	}
	return LoadTenantRegistry(t.path)
}

// LoadTenantRegistry reads a tenant configuration TOML file into a registry
func LoadTenantRegistry(path string) (*model.TenantRegistry, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "cannot read tenant configuration",
				goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read tenant configuration", goerr.V(ConfigPathKey, path))
	}

	var file TenantsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse tenant configuration",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "tenant configuration validation failed", goerr.V(ConfigPathKey, path))
	}

	registry := model.NewTenantRegistry()
	for _, entry := range file.Tenants {
		registry.Register(&model.Tenant{
			ID:   types.TenantID(entry.ID),
			Name: entry.Name,
		})
	}
	return registry, nil
}
