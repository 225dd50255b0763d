package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NewNoteID generates a new UUID v4 NoteID
func NewNoteID() types.NoteID {
	return types.NoteID(uuid.New().String())
}

// Note represents a free-form note attached to a building
type Note struct {
	ID         types.NoteID
	TenantID   types.TenantID
	BuildingID types.BuildingID
	Body       string
	Author     string
	Pinned     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
