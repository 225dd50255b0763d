package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NewInspectionID generates a new UUID v4 InspectionID
func NewInspectionID() types.InspectionID {
	return types.InspectionID(uuid.New().String())
}

// Inspection represents a scheduled or completed compliance inspection
type Inspection struct {
	ID           types.InspectionID
	TenantID     types.TenantID
	BuildingID   types.BuildingID
	Title        string
	Status       types.InspectionStatus
	ScheduledFor string // ISO date ("2006-01-02")
	CompletedAt  time.Time
	Outcome      string

	TemplateID types.TemplateID
	Data       map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}
