package types

import "fmt"

// EntityType represents the classification of entities a template applies to
type EntityType string

const (
	EntityTypeBuilding   EntityType = "building"
	EntityTypeTask       EntityType = "task"
	EntityTypeDocument   EntityType = "document"
	EntityTypeInspection EntityType = "inspection"
	EntityTypeGeneral    EntityType = "general"
)

// AllEntityTypes returns all valid entity types
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityTypeBuilding,
		EntityTypeTask,
		EntityTypeDocument,
		EntityTypeInspection,
		EntityTypeGeneral,
	}
}

// IsValid checks if the entity type is valid
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeBuilding,
		EntityTypeTask,
		EntityTypeDocument,
		EntityTypeInspection,
		EntityTypeGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation of the entity type
func (t EntityType) String() string {
	return string(t)
}

// ParseEntityType parses a string into an EntityType
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid entity type: %s", s)
	}
	return t, nil
}
