package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NewContactID generates a new UUID v4 ContactID
func NewContactID() types.ContactID {
	return types.ContactID(uuid.New().String())
}

// Contact represents a person associated with a tenant's portfolio.
// Email and Phone are redacted from structured logs.
type Contact struct {
	ID       types.ContactID
	TenantID types.TenantID
	Name     string
	Role     string
	Company  string
	Email    string `masq:"secret"`
	Phone    string `masq:"secret"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
