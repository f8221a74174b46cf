package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Address      string    `gorm:"type:varchar(200);not null"`
	BloodGroup   string    `gorm:"column:blood_grp;type:varchar(10);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Age          int       `gorm:"not null"`
	Gender       string    `gorm:"type:varchar(20);not null"`
	LiveLocation string    `gorm:"column:live_loc;type:varchar(200);not null"`
	Phone        *string   `gorm:"type:varchar(20)"`
	Verified     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
