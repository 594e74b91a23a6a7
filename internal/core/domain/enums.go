package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role represents user role in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
)

// PropertyStatus is the explicitly set occupancy flag of a property
type PropertyStatus string

const (
	PropertyVacant   PropertyStatus = "vacant"
	PropertyOccupied PropertyStatus = "occupied"
)

// MaintenanceStatus tracks a maintenance request
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenancePending    MaintenanceStatus = "pending"
	MaintenanceInProgress MaintenanceStatus = "in-progress"
	MaintenanceResolved   MaintenanceStatus = "resolved"
)

// ApplicationStatus tracks a rental application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// EmploymentStatus is the applicant's declared employment
type EmploymentStatus string

const (
	EmploymentEmployed     EmploymentStatus = "employed"
	EmploymentSelfEmployed EmploymentStatus = "self-employed"
	EmploymentStudent      EmploymentStatus = "student"
	EmploymentUnemployed   EmploymentStatus = "unemployed"
)

// parseEnum normalizes raw and checks it against the allowed values.
func parseEnum[T ~string](kind, raw string, allowed ...T) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, raw)
}

func unmarshalEnum[T ~string](data []byte, kind string, dst *T, allowed ...T) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := parseEnum(kind, raw, allowed...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ParseRole parses a role name case-insensitively
func ParseRole(s string) (Role, error) {
	return parseEnum("role", s, RoleAdmin, RoleLandlord, RoleTenant)
}

func (r *Role) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "role", r, RoleAdmin, RoleLandlord, RoleTenant)
}

// ParsePropertyStatus parses a property status case-insensitively
func ParsePropertyStatus(s string) (PropertyStatus, error) {
	return parseEnum("property status", s, PropertyVacant, PropertyOccupied)
}

func (s *PropertyStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "property status", s, PropertyVacant, PropertyOccupied)
}

// ParseMaintenanceStatus parses a maintenance status case-insensitively
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	return parseEnum("maintenance status", s,
		MaintenanceOpen, MaintenancePending, MaintenanceInProgress, MaintenanceResolved)
}

func (s *MaintenanceStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "maintenance status", s,
		MaintenanceOpen, MaintenancePending, MaintenanceInProgress, MaintenanceResolved)
}

// ParseApplicationStatus parses an application status case-insensitively
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	return parseEnum("application status", s,
		ApplicationPending, ApplicationApproved, ApplicationRejected)
}

func (s *ApplicationStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "application status", s,
		ApplicationPending, ApplicationApproved, ApplicationRejected)
}

// CanTransition reports whether an application may move from s to next.
// Only pending applications can be decided, and only once.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	return s == ApplicationPending && (next == ApplicationApproved || next == ApplicationRejected)
}

// ParseEmploymentStatus parses an employment status case-insensitively
func ParseEmploymentStatus(s string) (EmploymentStatus, error) {
	return parseEnum("employment status", s,
		EmploymentEmployed, EmploymentSelfEmployed, EmploymentStudent, EmploymentUnemployed)
}

func (s *EmploymentStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, "employment status", s,
		EmploymentEmployed, EmploymentSelfEmployed, EmploymentStudent, EmploymentUnemployed)
}
