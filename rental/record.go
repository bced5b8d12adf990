package rental

import (
	"time"

	"gorm.io/gorm"
)

// Meta carries the fields every back-office record shares: the server
// assigned id, the owning tenant and the soft-delete timestamps.
type Meta struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	TenantID  uint           `json:"tenant_id" gorm:"index;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// RecordID returns the server-assigned id, zero until persisted
func (m *Meta) RecordID() uint {
	return m.ID
}

// TenantRef returns the owning tenant id
func (m *Meta) TenantRef() uint {
	return m.TenantID
}

// SetTenantRef stamps the owning tenant id
func (m *Meta) SetTenantRef(id uint) {
	m.TenantID = id
}
