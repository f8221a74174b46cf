package entities

import "github.com/google/uuid"

// Hospital is static reference data shown on the accept page. Address holds
// "lat,lon" coordinates; the list is never geographically filtered.
type Hospital struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	ContactNo string    `json:"contactNo"`
	Email     string    `json:"email"`
}
