package rental

import "time"

// Maintenance statuses
const (
	MaintenanceScheduled  = "scheduled"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
	MaintenanceDeleted    = "deleted"
)

// Maintenance represents a vehicle maintenance record
type Maintenance struct {
	Meta
	VehicleID   uint       `json:"vehicle_id" gorm:"index;not null"`
	ServiceType string     `json:"service_type" gorm:"type:varchar(50)"`
	ServiceDate *time.Time `json:"service_date,omitempty"`
	Cost        float64    `json:"cost"`
	Technician  string     `json:"technician" gorm:"type:varchar(100)"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	Status      string     `json:"status" gorm:"type:varchar(20);index;default:'scheduled'"`
}

// MaintenanceRequest is the create/update payload for a maintenance record
type MaintenanceRequest struct {
	TenantID    uint       `json:"tenant_id"`
	VehicleID   uint       `json:"vehicle_id"`
	ServiceType string     `json:"service_type"`
	ServiceDate *time.Time `json:"service_date,omitempty"`
	Cost        float64    `json:"cost"`
	Technician  string     `json:"technician"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`

	CostInput string `json:"-"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *MaintenanceRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *MaintenanceRequest) Normalize() {
	r.ServiceType = trim(r.ServiceType)
	r.Technician = trim(r.Technician)
	r.Description = nilIfEmpty(r.Description)
	r.Status = trim(r.Status)
	if r.CostInput != "" {
		r.Cost = parseAmount(r.CostInput)
	}
}

// NewMaintenanceDraft builds the default create-mode draft
func NewMaintenanceDraft() *MaintenanceRequest {
	return &MaintenanceRequest{Status: MaintenanceScheduled}
}

// MaintenanceDraftFrom hydrates a draft from an existing record
func MaintenanceDraftFrom(m *Maintenance) *MaintenanceRequest {
	return &MaintenanceRequest{
		TenantID:    m.TenantID,
		VehicleID:   m.VehicleID,
		ServiceType: m.ServiceType,
		ServiceDate: m.ServiceDate,
		Cost:        m.Cost,
		Technician:  m.Technician,
		Description: m.Description,
		Status:      m.Status,
	}
}
