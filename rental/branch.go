package rental

// Branch statuses
const (
	BranchActive   = "active"
	BranchInactive = "inactive"
	BranchDeleted  = "deleted"
)

// Branch represents a rental firm location
type Branch struct {
	Meta
	Name    string  `json:"name" gorm:"type:varchar(100);index;not null"`
	City    string  `json:"city" gorm:"type:varchar(50)"`
	Address *string `json:"address,omitempty" gorm:"type:text"`
	Phone   string  `json:"phone" gorm:"type:varchar(20)"`
	Status  string  `json:"status" gorm:"type:varchar(20);index;default:'active'"`
}

// BranchRequest is the create/update payload for a branch
type BranchRequest struct {
	TenantID uint    `json:"tenant_id"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Address  *string `json:"address,omitempty"`
	Phone    string  `json:"phone"`
	Status   string  `json:"status"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *BranchRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *BranchRequest) Normalize() {
	r.Name = trim(r.Name)
	r.City = trim(r.City)
	r.Address = nilIfEmpty(r.Address)
	r.Phone = trim(r.Phone)
	r.Status = trim(r.Status)
}

// NewBranchDraft builds the default create-mode draft
func NewBranchDraft() *BranchRequest {
	return &BranchRequest{Status: BranchActive}
}

// BranchDraftFrom hydrates a draft from an existing record
func BranchDraftFrom(b *Branch) *BranchRequest {
	return &BranchRequest{
		TenantID: b.TenantID,
		Name:     b.Name,
		City:     b.City,
		Address:  b.Address,
		Phone:    b.Phone,
		Status:   b.Status,
	}
}
