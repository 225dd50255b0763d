package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NewBuildingID generates a new UUID v4 BuildingID
func NewBuildingID() types.BuildingID {
	return types.BuildingID(uuid.New().String())
}

// Building represents a managed property. TemplateID is a weak reference:
// the building keeps its Data map even if the template's fields change or
// the template is deleted out from under it.
type Building struct {
	ID       types.BuildingID
	TenantID types.TenantID
	Name     string
	Address  string
	City     string
	Postcode string
	ImageRef string // object storage reference
	Archived bool

	TemplateID types.TemplateID
	Data       map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}
