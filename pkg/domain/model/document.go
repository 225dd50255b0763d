package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NewDocumentID generates a new UUID v4 DocumentID
func NewDocumentID() types.DocumentID {
	return types.DocumentID(uuid.New().String())
}

// Document represents a stored compliance document. FileRef is the stable
// object storage reference returned by the storage collaborator; the
// document record never holds file contents.
type Document struct {
	ID          types.DocumentID
	TenantID    types.TenantID
	BuildingID  types.BuildingID
	Title       string
	Category    string
	FileRef     string
	ContentType string
	Size        int64
	ExpiresAt   string // ISO date ("2006-01-02"), empty when the document does not expire

	TemplateID types.TemplateID
	Data       map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExpiresWithin reports whether the document expires within d of now.
// Documents without an expiry never expire.
func (doc *Document) ExpiresWithin(now time.Time, d time.Duration) bool {
	if doc.ExpiresAt == "" {
		return false
	}
	expires, err := time.Parse("2006-01-02", doc.ExpiresAt)
	if err != nil {
		return false
	}
	return expires.Before(now.Add(d))
}
