package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound    = goerr.New("configuration file not found")
	ErrInvalidConfig     = goerr.New("invalid configuration")
	ErrDuplicateTenantID = goerr.New("duplicate tenant ID")
	ErrMissingTenantName = goerr.New("tenant name is required")
	ErrUnknownBackend    = goerr.New("unknown backend")
	ErrMissingProjectID  = goerr.New("firestore project ID is required")
	ErrMissingBucket     = goerr.New("storage bucket is required")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	TenantIDKey   = "tenant_id"
	BackendKey    = "backend"
)
