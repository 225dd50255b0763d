package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// TenantID identifies an isolated organization. Tenant IDs come from the
// tenant configuration file, not from the database.
type TenantID string

var tenantIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the TenantID is valid
func (t TenantID) Validate() error {
	if t == "" {
		return goerr.New("tenant ID cannot be empty")
	}
	if !tenantIDPattern.MatchString(string(t)) {
		return goerr.New("tenant ID must be lowercase alphanumeric with hyphens", goerr.V("id", t))
	}
	return nil
}

// String returns the string representation of TenantID
func (t TenantID) String() string {
	return string(t)
}

// TemplateID identifies a field template
type TemplateID string

func (t TemplateID) String() string { return string(t) }

// BuildingID identifies a building
type BuildingID string

func (b BuildingID) String() string { return string(b) }

// TaskID identifies a compliance task
type TaskID string

func (t TaskID) String() string { return string(t) }

// DocumentID identifies a stored document
type DocumentID string

func (d DocumentID) String() string { return string(d) }

// InspectionID identifies an inspection
type InspectionID string

func (i InspectionID) String() string { return string(i) }

// ContactID identifies a contact
type ContactID string

func (c ContactID) String() string { return string(c) }

// NoteID identifies a note
type NoteID string

func (n NoteID) String() string { return string(n) }
