package rental

import (
	"time"

	"gorm.io/gorm"
)

// Tenant represents a rental firm account. It is the one record that is not
// tenant-scoped itself; super-admins list tenants to pick their effective
// scope.
type Tenant struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(100);index;not null"`
	Active    bool           `json:"active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
