package types

import "fmt"

// InspectionStatus represents the lifecycle state of an inspection
type InspectionStatus string

const (
	InspectionStatusScheduled InspectionStatus = "scheduled"
	InspectionStatusCompleted InspectionStatus = "completed"
	InspectionStatusFailed    InspectionStatus = "failed"
)

// AllInspectionStatuses returns all valid inspection statuses
func AllInspectionStatuses() []InspectionStatus {
	return []InspectionStatus{
		InspectionStatusScheduled,
		InspectionStatusCompleted,
		InspectionStatusFailed,
	}
}

// IsValid checks if the inspection status is valid
func (s InspectionStatus) IsValid() bool {
	switch s {
	case InspectionStatusScheduled, InspectionStatusCompleted, InspectionStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the inspection status
func (s InspectionStatus) String() string {
	return string(s)
}

// ParseInspectionStatus parses a string into an InspectionStatus
func ParseInspectionStatus(s string) (InspectionStatus, error) {
	status := InspectionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid inspection status: %s", s)
	}
	return status, nil
}
