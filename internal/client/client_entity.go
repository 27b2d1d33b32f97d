package client

import (
	"time"

	"github.com/google/uuid"
)

// Client is the employer account. It owns employees and payroll runs.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	EIN       string `gorm:"column:ein"`
	Address   string
	State     string `gorm:"size:2"`
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
