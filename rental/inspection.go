package rental

// Inspection statuses
const (
	InspectionScheduled = "scheduled"
	InspectionPassed    = "passed"
	InspectionFailed    = "failed"
	InspectionDeleted   = "deleted"
)

// Inspection represents a vehicle inspection record
type Inspection struct {
	Meta
	VehicleID uint    `json:"vehicle_id" gorm:"index;not null"`
	BranchID  *uint   `json:"branch_id,omitempty" gorm:"index"`
	Inspector string  `json:"inspector" gorm:"type:varchar(100)"`
	Odometer  int     `json:"odometer"`
	Result    *string `json:"result,omitempty" gorm:"type:text"`
	Status    string  `json:"status" gorm:"type:varchar(20);index;default:'scheduled'"`
}

// InspectionRequest is the create/update payload for an inspection
type InspectionRequest struct {
	TenantID  uint    `json:"tenant_id"`
	VehicleID uint    `json:"vehicle_id"`
	BranchID  *uint   `json:"branch_id,omitempty"`
	Inspector string  `json:"inspector"`
	Odometer  int     `json:"odometer"`
	Result    *string `json:"result,omitempty"`
	Status    string  `json:"status"`

	OdometerInput string `json:"-"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *InspectionRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *InspectionRequest) Normalize() {
	r.Inspector = trim(r.Inspector)
	r.Result = nilIfEmpty(r.Result)
	r.Status = trim(r.Status)
	if r.OdometerInput != "" {
		r.Odometer = parseCount(r.OdometerInput)
	}
}

// NewInspectionDraft builds the default create-mode draft
func NewInspectionDraft() *InspectionRequest {
	return &InspectionRequest{Status: InspectionScheduled}
}

// InspectionDraftFrom hydrates a draft from an existing record
func InspectionDraftFrom(i *Inspection) *InspectionRequest {
	return &InspectionRequest{
		TenantID:  i.TenantID,
		VehicleID: i.VehicleID,
		BranchID:  i.BranchID,
		Inspector: i.Inspector,
		Odometer:  i.Odometer,
		Result:    i.Result,
		Status:    i.Status,
	}
}
