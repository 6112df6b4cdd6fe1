package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/campusfest/fest-api/internal/domain"
)

type CreateEventRequest struct {
	Name            string   `json:"Event_Name"`
	Type            string   `json:"Event_Type"`
	PrizeMoney      *float64 `json:"Prize_Money"`
	MaxParticipants *int     `json:"Max_Participants"`
	DayID           *uint    `json:"DayID"`
	VenueID         *uint    `json:"VenueID"`
	PerformerID     *uint    `json:"Performer_ID"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.Required, validation.In(
			string(domain.EventCultural),
			string(domain.EventPerformance),
		)),
		validation.Field(&req.PrizeMoney, validation.Min(0.0)),
		validation.Field(&req.MaxParticipants, validation.Min(1)),
	)
}

type CreateRegistrationRequest struct {
	EventID       uint `json:"Event_ID"`
	ParticipantID uint `json:"Participant_ID"`
}

func (req *CreateRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.ParticipantID, validation.Required),
	)
}

type CreateManagementRequest struct {
	EventID uint `json:"Event_ID"`
	TeamID  uint `json:"Team_ID"`
}

func (req *CreateManagementRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.TeamID, validation.Required),
	)
}

type CreateSponsorshipRequest struct {
	EventID            uint    `json:"Event_ID"`
	SponsorID          uint    `json:"Sponsor_ID"`
	ContributionAmount float64 `json:"Contribution_Amount"`
}

func (req *CreateSponsorshipRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.SponsorID, validation.Required),
		validation.Field(&req.ContributionAmount, validation.Required, validation.Min(0.0)),
	)
}

type UpdateSponsorshipRequest struct {
	ContributionAmount float64 `json:"Contribution_Amount"`
}

func (req *UpdateSponsorshipRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContributionAmount, validation.Required, validation.Min(0.0)),
	)
}

type CreateTicketRequest struct {
	EventID       uint `json:"Event_ID"`
	ParticipantID uint `json:"Participant_ID"`
	Quantity      int  `json:"Quantity"`
}

func (req *CreateTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.ParticipantID, validation.Required),
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}

type UpdateTicketRequest struct {
	Quantity int `json:"Quantity"`
}

func (req *UpdateTicketRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Quantity, validation.Required, validation.Min(1)),
	)
}
