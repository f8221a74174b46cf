package models

import (
	"time"

	"github.com/google/uuid"
)

type SOSRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RequiredBlood string    `gorm:"type:varchar(10);not null"`
	Status        string    `gorm:"type:varchar(50);not null;default:'Pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
