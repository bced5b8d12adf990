package rental

// Role statuses
const (
	RoleActive  = "active"
	RoleDeleted = "deleted"
)

// Role represents a back-office role with its permission keys
type Role struct {
	Meta
	Name        string `json:"name" gorm:"type:varchar(50);index;not null"`
	Permissions string `json:"permissions" gorm:"type:text"`
	Status      string `json:"status" gorm:"type:varchar(20);index;default:'active'"`
}

// RoleRequest is the create/update payload for a role
type RoleRequest struct {
	TenantID    uint   `json:"tenant_id"`
	Name        string `json:"name"`
	Permissions string `json:"permissions"`
	Status      string `json:"status"`
}

// SetTenantID stamps the resolved tenant onto the payload
func (r *RoleRequest) SetTenantID(id uint) {
	r.TenantID = id
}

// Normalize shapes the draft for submission
func (r *RoleRequest) Normalize() {
	r.Name = trim(r.Name)
	r.Permissions = trim(r.Permissions)
	r.Status = trim(r.Status)
}

// NewRoleDraft builds the default create-mode draft
func NewRoleDraft() *RoleRequest {
	return &RoleRequest{Status: RoleActive}
}

// RoleDraftFrom hydrates a draft from an existing record
func RoleDraftFrom(role *Role) *RoleRequest {
	return &RoleRequest{
		TenantID:    role.TenantID,
		Name:        role.Name,
		Permissions: role.Permissions,
		Status:      role.Status,
	}
}
