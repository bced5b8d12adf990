package rental

import "time"

// Contract statuses. Only draft contracts may be cancelled from the
// back-office, enforced by the presentation layer.
const (
	ContractDraft     = "draft"
	ContractActive    = "active"
	ContractClosed    = "closed"
	ContractCancelled = "cancelled"
	ContractDeleted   = "deleted"
)

// Contract represents a rental agreement between a customer and a vehicle
type Contract struct {
	Meta
	BranchID   *uint      `json:"branch_id,omitempty" gorm:"index"`
	CustomerID uint       `json:"customer_id" gorm:"index;not null"`
	VehicleID  uint       `json:"vehicle_id" gorm:"index;not null"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	DailyRate  float64    `json:"daily_rate"`
	Deposit    float64    `json:"deposit"`
	Status     string     `json:"status" gorm:"type:varchar(20);index;default:'draft'"`
	Notes      *string    `json:"notes,omitempty" gorm:"type:text"`
}

// ContractRequest is the create/update payload for a contract
type ContractRequest struct {
	TenantID   uint       `json:"tenant_id"`
	BranchID   *uint      `json:"branch_id,omitempty"`
	CustomerID uint       `json:"customer_id"`
	VehicleID  uint       `json:"vehicle_id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	DailyRate  float64    `json:"daily_rate"`
	Deposit    float64    `json:"deposit"`
	Status     string     `json:"status"`
	Notes      *string    `json:"notes,omitempty"`

	DailyRateInput string `json:"-"`
	DepositInput   string `json:"-"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *ContractRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *ContractRequest) Normalize() {
	r.Status = trim(r.Status)
	r.Notes = nilIfEmpty(r.Notes)
	if r.DailyRateInput != "" {
		r.DailyRate = parseAmount(r.DailyRateInput)
	}
	if r.DepositInput != "" {
		r.Deposit = parseAmount(r.DepositInput)
	}
}

// NewContractDraft builds the default create-mode draft
func NewContractDraft() *ContractRequest {
	return &ContractRequest{Status: ContractDraft}
}

// ContractDraftFrom hydrates a draft from an existing record
func ContractDraftFrom(c *Contract) *ContractRequest {
	return &ContractRequest{
		TenantID:   c.TenantID,
		BranchID:   c.BranchID,
		CustomerID: c.CustomerID,
		VehicleID:  c.VehicleID,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		DailyRate:  c.DailyRate,
		Deposit:    c.Deposit,
		Status:     c.Status,
		Notes:      c.Notes,
	}
}
