package domain

import "time"

// Member is a festival committee member. The student id doubles as the
// primary key and login identifier.
type Member struct {
	StudentID string    `json:"Student_ID"`
	Name      string    `json:"Name"`
	Role      Role      `json:"Role"`
	TeamID    *uint     `json:"Team_ID"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
