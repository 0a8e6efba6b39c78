// Package model contains the persistence models mirroring database tables.
package model

import (
	"time"

	"github.com/lib/pq"
)

// BusinessModel mirrors the 'businesses' table. Keywords use a native
// PostgreSQL text[] column so exact keyword matches can use a GIN index.
type BusinessModel struct {
	ID           uint           `gorm:"primarykey"`
	Name         string         `gorm:"type:varchar(255);not null"`
	NameLower    string         `gorm:"type:varchar(255);not null;index:idx_businesses_name_lower"`
	Address      string         `gorm:"type:text;not null"`
	Phone        string         `gorm:"type:varchar(50);not null"`
	Email        string         `gorm:"type:varchar(255)"`
	Keywords     pq.StringArray `gorm:"type:text[];not null"`
	RegisteredBy string         `gorm:"type:varchar(50);not null"`
	RegisteredAt time.Time      `gorm:"autoCreateTime;index:idx_businesses_registered_at"`
	Status       string         `gorm:"type:varchar(20);not null;default:active;index:idx_businesses_status"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
