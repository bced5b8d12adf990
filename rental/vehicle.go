package rental

// Vehicle statuses. "deleted" is the soft-delete state.
const (
	VehicleAvailable   = "available"
	VehicleRented      = "rented"
	VehicleMaintenance = "maintenance"
	VehicleDeleted     = "deleted"
)

// Vehicle represents a rental fleet vehicle
type Vehicle struct {
	Meta
	BranchID     *uint   `json:"branch_id,omitempty" gorm:"index"`
	PlateNumber  string  `json:"plate_number" gorm:"type:varchar(32);index;not null"`
	VIN          string  `json:"vin" gorm:"type:varchar(64)"`
	Make         string  `json:"make" gorm:"type:varchar(50)"`
	Model        string  `json:"model" gorm:"type:varchar(50)"`
	Year         int     `json:"year"`
	Color        string  `json:"color" gorm:"type:varchar(30)"`
	Mileage      int     `json:"mileage"`
	DailyRate    float64 `json:"daily_rate"`
	Status       string  `json:"status" gorm:"type:varchar(20);index;default:'available'"`
	Notes        *string `json:"notes,omitempty" gorm:"type:text"`
}

// VehicleRequest is the create/update payload for a vehicle
type VehicleRequest struct {
	TenantID    uint    `json:"tenant_id"`
	BranchID    *uint   `json:"branch_id,omitempty"`
	PlateNumber string  `json:"plate_number"`
	VIN         string  `json:"vin"`
	Make        string  `json:"make"`
	Model       string  `json:"model"`
	Year        int     `json:"year"`
	Color       string  `json:"color"`
	Mileage     int     `json:"mileage"`
	DailyRate   float64 `json:"daily_rate"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	// Form inputs coerced on Normalize
	MileageInput   string `json:"-"`
	DailyRateInput string `json:"-"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *VehicleRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *VehicleRequest) Normalize() {
	r.PlateNumber = trim(r.PlateNumber)
	r.VIN = trim(r.VIN)
	r.Make = trim(r.Make)
	r.Model = trim(r.Model)
	r.Color = trim(r.Color)
	r.Status = trim(r.Status)
	r.Notes = nilIfEmpty(r.Notes)
	if r.MileageInput != "" {
		r.Mileage = parseCount(r.MileageInput)
	}
	if r.DailyRateInput != "" {
		r.DailyRate = parseAmount(r.DailyRateInput)
	}
}

// NewVehicleDraft builds the default create-mode draft
func NewVehicleDraft() *VehicleRequest {
	return &VehicleRequest{Status: VehicleAvailable}
}

// VehicleDraftFrom hydrates a draft from an existing record
func VehicleDraftFrom(v *Vehicle) *VehicleRequest {
	return &VehicleRequest{
		TenantID:    v.TenantID,
		BranchID:    v.BranchID,
		PlateNumber: v.PlateNumber,
		VIN:         v.VIN,
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Color:       v.Color,
		Mileage:     v.Mileage,
		DailyRate:   v.DailyRate,
		Status:      v.Status,
		Notes:       v.Notes,
	}
}
