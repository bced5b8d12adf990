package rental

// Plan statuses
const (
	PlanActive   = "active"
	PlanArchived = "archived"
	PlanDeleted  = "deleted"
)

// Plan represents a subscription plan offered by the rental firm
type Plan struct {
	Meta
	Name         string  `json:"name" gorm:"type:varchar(100);index;not null"`
	MonthlyPrice float64 `json:"monthly_price"`
	DurationDays int     `json:"duration_days"`
	Description  *string `json:"description,omitempty" gorm:"type:text"`
	Status       string  `json:"status" gorm:"type:varchar(20);index;default:'active'"`
}

// PlanRequest is the create/update payload for a plan
type PlanRequest struct {
	TenantID     uint    `json:"tenant_id"`
	Name         string  `json:"name"`
	MonthlyPrice float64 `json:"monthly_price"`
	DurationDays int     `json:"duration_days"`
	Description  *string `json:"description,omitempty"`
	Status       string  `json:"status"`

	MonthlyPriceInput string `json:"-"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *PlanRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *PlanRequest) Normalize() {
	r.Name = trim(r.Name)
	r.Description = nilIfEmpty(r.Description)
	r.Status = trim(r.Status)
	if r.MonthlyPriceInput != "" {
		r.MonthlyPrice = parseAmount(r.MonthlyPriceInput)
	}
}

// NewPlanDraft builds the default create-mode draft
func NewPlanDraft() *PlanRequest {
	return &PlanRequest{Status: PlanActive}
}

// PlanDraftFrom hydrates a draft from an existing record
func PlanDraftFrom(p *Plan) *PlanRequest {
	return &PlanRequest{
		TenantID:     p.TenantID,
		Name:         p.Name,
		MonthlyPrice: p.MonthlyPrice,
		DurationDays: p.DurationDays,
		Description:  p.Description,
		Status:       p.Status,
	}
}
