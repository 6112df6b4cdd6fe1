package domain

import "time"

type EventType string

const (
	EventCultural    EventType = "Cultural"
	EventPerformance EventType = "Performance"
)

func ParseEventType(s string) (EventType, bool) {
	switch EventType(s) {
	case EventCultural, EventPerformance:
		return EventType(s), true
	}

	return "", false
}

// Event is a single festival event. The day, venue and performer references
// are optional; when present they must point at existing rows.
type Event struct {
	ID              uint      `json:"Event_ID"`
	Name            string    `json:"Event_Name"`
	Type            EventType `json:"Event_Type"`
	PrizeMoney      *float64  `json:"Prize_Money"`
	MaxParticipants *int      `json:"Max_Participants"`
	DayID           *uint     `json:"DayID"`
	VenueID         *uint     `json:"VenueID"`
	PerformerID     *uint     `json:"Performer_ID"`
}

// Registration links an event and a participant. The (event, participant)
// pair is unique.
type Registration struct {
	ID            uint      `json:"Registration_ID"`
	EventID       uint      `json:"Event_ID"`
	ParticipantID uint      `json:"Participant_ID"`
	RegisteredAt  time.Time `json:"Registration_Date"`
}

// Management assigns a team to run an event. The (event, team) pair is unique.
type Management struct {
	ID      uint `json:"Management_ID"`
	EventID uint `json:"Event_ID"`
	TeamID  uint `json:"Team_ID"`
}

// Sponsorship links a sponsor to an event with a contribution amount.
// The (event, sponsor) pair is unique.
type Sponsorship struct {
	ID                 uint    `json:"Sponsorship_ID"`
	EventID            uint    `json:"Event_ID"`
	SponsorID          uint    `json:"Sponsor_ID"`
	ContributionAmount float64 `json:"Contribution_Amount"`
}

// Ticket records a ticket purchase. Deliberately not unique per
// (event, participant): a participant may buy tickets more than once.
type Ticket struct {
	ID            uint      `json:"Ticket_ID"`
	EventID       uint      `json:"Event_ID"`
	ParticipantID uint      `json:"Participant_ID"`
	Quantity      int       `json:"Quantity"`
	PurchasedAt   time.Time `json:"Purchase_Date"`
}

// EventSignup is the result of the participant-facing register-for-event
// flow, where the registration and its ticket are written atomically.
type EventSignup struct {
	Registration Registration `json:"registration"`
	Ticket       Ticket       `json:"ticket"`
}

type DashboardStats struct {
	TotalEvents       int64   `json:"totalEvents"`
	TotalParticipants int64   `json:"totalParticipants"`
	TotalSponsors     int64   `json:"totalSponsors"`
	TotalBudget       float64 `json:"totalBudget"`
	TotalRevenue      float64 `json:"totalRevenue"`
}
