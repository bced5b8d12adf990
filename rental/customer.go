package rental

// Customer statuses
const (
	CustomerActive      = "active"
	CustomerBlacklisted = "blacklisted"
	CustomerDeleted     = "deleted"
)

// Customer represents a rental customer
type Customer struct {
	Meta
	Name          string  `json:"name" gorm:"type:varchar(100);index;not null"`
	Email         string  `json:"email" gorm:"type:varchar(100)"`
	Phone         string  `json:"phone" gorm:"type:varchar(20)"`
	NationalID    string  `json:"national_id" gorm:"type:varchar(50);index"`
	LicenseNumber string  `json:"license_number" gorm:"type:varchar(50)"`
	Address       *string `json:"address,omitempty" gorm:"type:text"`
	Status        string  `json:"status" gorm:"type:varchar(20);index;default:'active'"`
}

// CustomerRequest is the create/update payload for a customer
type CustomerRequest struct {
	TenantID      uint    `json:"tenant_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	NationalID    string  `json:"national_id"`
	LicenseNumber string  `json:"license_number"`
	Address       *string `json:"address,omitempty"`
	Status        string  `json:"status"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *CustomerRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *CustomerRequest) Normalize() {
	r.Name = trim(r.Name)
	r.Email = trim(r.Email)
	r.Phone = trim(r.Phone)
	r.NationalID = trim(r.NationalID)
	r.LicenseNumber = trim(r.LicenseNumber)
	r.Address = nilIfEmpty(r.Address)
	r.Status = trim(r.Status)
}

// NewCustomerDraft builds the default create-mode draft
func NewCustomerDraft() *CustomerRequest {
	return &CustomerRequest{Status: CustomerActive}
}

// CustomerDraftFrom hydrates a draft from an existing record
func CustomerDraftFrom(c *Customer) *CustomerRequest {
	return &CustomerRequest{
		TenantID:      c.TenantID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		NationalID:    c.NationalID,
		LicenseNumber: c.LicenseNumber,
		Address:       c.Address,
		Status:        c.Status,
	}
}
