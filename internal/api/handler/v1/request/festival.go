package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/campusfest/fest-api/internal/domain"
)

const dateLayout = "2006-01-02"

type CreateTeamRequest struct {
	Name string `json:"Team_Name"`
}

func (req *CreateTeamRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateVenueRequest struct {
	Name     string  `json:"VenueName"`
	Capacity *int    `json:"Capacity"`
	Location *string `json:"Location"`
}

func (req *CreateVenueRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Capacity, validation.Min(0)),
		validation.Field(&req.Location, validation.Length(0, 200)),
	)
}

type CreatePerformerRequest struct {
	Name string `json:"Name"`
	Type string `json:"Performer_Type"`
}

func (req *CreatePerformerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Type, validation.Required, validation.In(
			string(domain.PerformerSinger),
			string(domain.PerformerDJ),
			string(domain.PerformerStandup),
			string(domain.PerformerBand),
		)),
	)
}

type CreateSponsorRequest struct {
	Name   string  `json:"Sponsor_Name"`
	Amount float64 `json:"Amount"`
	Type   *string `json:"Sponsor_Type"`
}

func (req *CreateSponsorRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Amount, validation.Min(0.0)),
		validation.Field(&req.Type, validation.Length(0, 50)),
	)
}

type CreateDayRequest struct {
	DayNumber   int     `json:"DayNumber"`
	EventDate   string  `json:"EventDate"`
	Description *string `json:"Description"`
}

func (req *CreateDayRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DayNumber, validation.Required, validation.Min(1)),
		validation.Field(&req.EventDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

// Date returns the parsed event date. Call after Validate.
func (req *CreateDayRequest) Date() time.Time {
	date, _ := time.Parse(dateLayout, req.EventDate)
	return date
}

type CreateExpenseRequest struct {
	Description     string  `json:"Item_Description"`
	AllocatedAmount float64 `json:"Allocated_Amount"`
}

func (req *CreateExpenseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Description, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.AllocatedAmount, validation.Required, validation.Min(0.0)),
	)
}

type UpdateMemberRequest struct {
	Name   string `json:"Name"`
	Role   string `json:"Role"`
	TeamID *uint  `json:"Team_ID"`
}

func (req *UpdateMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Role, validation.Required, validation.In(
			string(domain.RoleSuperAdmin),
			string(domain.RoleHead),
			string(domain.RoleCoHead),
			string(domain.RoleMember),
		)),
	)
}

type UpdateParticipantRequest struct {
	Name    string  `json:"Name"`
	Email   string  `json:"Email"`
	Phone   *string `json:"Phone"`
	College *string `json:"College"`
}

func (req *UpdateParticipantRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.College, validation.Length(0, 100)),
	)
}
