package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BloodGroup is the stored blood group string, e.g. "O+". Matching is an
// exact, case-sensitive comparison against the stored value.
type BloodGroup = string

// User represents a registered donor/requester
type User struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	BloodGroup   BloodGroup  `json:"bloodGrp"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Age          int         `json:"age"`
	Gender       string      `json:"gender"`
	LiveLocation string      `json:"liveLoc"`
	Phone        null.String `json:"phone,omitempty"`
	Verified     bool        `json:"verified"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// SignupInput represents input for creating a user
type SignupInput struct {
	Name         string `form:"name" json:"name" binding:"required"`
	Email        string `form:"email" json:"email" binding:"required,email"`
	Password     string `form:"password" json:"password" binding:"required"`
	Address      string `form:"address" json:"address" binding:"required"`
	BloodGroup   string `form:"blood_grp" json:"blood_grp" binding:"required"`
	Age          int    `form:"age" json:"age" binding:"required,gt=0"`
	Gender       string `form:"gender" json:"gender" binding:"required"`
	LiveLocation string `form:"live_loc" json:"live_loc" binding:"required"`
	Phone        string `form:"phone" json:"phone"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}
