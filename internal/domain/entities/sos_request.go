package entities

import (
	"time"

	"github.com/google/uuid"
)

// SOSStatus is the request status. Only Pending is ever written; the original
// flow defines no accept/fulfill transition and none is invented here.
type SOSStatus string

const (
	SOSStatusPending SOSStatus = "Pending"
)

// SOSRequest represents an urgent blood need raised by a user. RequiredBlood
// is copied from the requester's blood group at creation time and never
// re-derived afterwards.
type SOSRequest struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	RequiredBlood string    `json:"requiredBlood"`
	Status        SOSStatus `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AcceptView is what the accept page shows: the patient who raised the
// request, every donor matching the required blood group, and the full
// hospital registry.
type AcceptView struct {
	Request   *SOSRequest `json:"request"`
	Patient   *User       `json:"patient"`
	Donors    []*User     `json:"donors"`
	Hospitals []*Hospital `json:"hospitals"`
}
