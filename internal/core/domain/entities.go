package domain

import (
	"math/rand"
	"time"
)

// Collection names one persisted JSON document
type Collection string

const (
	CollectionUsers        Collection = "users"
	CollectionProperties   Collection = "properties"
	CollectionPayments     Collection = "payments"
	CollectionMaintenance  Collection = "maintenance"
	CollectionApplications Collection = "applications"
)

// Collections lists every persisted collection in seed order
var Collections = []Collection{
	CollectionProperties,
	CollectionPayments,
	CollectionMaintenance,
	CollectionUsers,
	CollectionApplications,
}

// User represents an account of any role
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Property represents a rentable unit listed by a landlord
type Property struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Address    string         `json:"address"`
	Rent       float64        `json:"rent"`
	LandlordID string         `json:"landlordId"`
	Tenants    []string       `json:"tenants"`
	Status     PropertyStatus `json:"status"`
}

// Coordinate is a display-only map position
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Nairobi city centre, the base for property pins
const (
	baseLatitude   = -1.2921
	baseLongitude  = 36.8219
	locationJitter = 0.02
)

// Location returns a map pin near Nairobi. It is randomized on every call
// and never persisted.
func (p *Property) Location() Coordinate {
	return Coordinate{
		Latitude:  baseLatitude + (rand.Float64()*2-1)*locationJitter,
		Longitude: baseLongitude + (rand.Float64()*2-1)*locationJitter,
	}
}

// HasTenant reports whether userID is on the property's tenant list
func (p *Property) HasTenant(userID string) bool {
	for _, t := range p.Tenants {
		if t == userID {
			return true
		}
	}
	return false
}

// Payment is a rent payment, always in KES
type Payment struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	TenantID   string    `json:"tenantId"`
}

// MaintenanceRequest is a repair request raised against a property
type MaintenanceRequest struct {
	ID           string            `json:"id"`
	PropertyID   string            `json:"propertyId"`
	Description  string            `json:"description"`
	DateReported time.Time         `json:"dateReported"`
	Status       MaintenanceStatus `json:"status"`
}

// IsResolved reports whether the request is closed
func (m *MaintenanceRequest) IsResolved() bool {
	return m.Status == MaintenanceResolved
}

// RentalApplication is a tenant's application to rent a property
type RentalApplication struct {
	ID               string            `json:"id"`
	PropertyID       string            `json:"propertyId"`
	TenantID         string            `json:"tenantId"`
	ApplicationDate  time.Time         `json:"applicationDate"`
	Status           ApplicationStatus `json:"status"`
	TenantName       string            `json:"tenantName"`
	TenantEmail      string            `json:"tenantEmail"`
	MonthlyIncome    float64           `json:"monthlyIncome"`
	EmploymentStatus EmploymentStatus  `json:"employmentStatus"`
	Notes            *string           `json:"notes,omitempty"`
}

// IsPending reports whether the application awaits a decision
func (a *RentalApplication) IsPending() bool {
	return a.Status == ApplicationPending
}

// Entity ids, used by the generic collection repository
func (u User) GetID() string               { return u.ID }
func (p Property) GetID() string           { return p.ID }
func (p Payment) GetID() string            { return p.ID }
func (m MaintenanceRequest) GetID() string { return m.ID }
func (a RentalApplication) GetID() string  { return a.ID }
