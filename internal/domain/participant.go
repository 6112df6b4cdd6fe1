package domain

import "time"

// Participant is a public user who registers for events and buys tickets.
type Participant struct {
	ID        uint      `json:"Participant_ID"`
	Name      string    `json:"Name"`
	Email     string    `json:"Email"`
	Password  string    `json:"-"`
	Phone     *string   `json:"Phone"`
	College   *string   `json:"College"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
