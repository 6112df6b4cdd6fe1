package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/campusfest/fest-api/internal/domain"
)

// The lookahead groups need regexp2; the stdlib engine rejects them.
const passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var (
	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
)

func validatePassword(password string) error {
	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}

type MemberLoginRequest struct {
	StudentID string `json:"Student_ID"`
	Password  string `json:"Password"`
}

func (req *MemberLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type ParticipantLoginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

func (req *ParticipantLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type RegisterMemberRequest struct {
	StudentID string `json:"Student_ID"`
	Name      string `json:"Name"`
	Role      string `json:"Role"`
	TeamID    *uint  `json:"Team_ID"`
	Password  string `json:"Password"`
}

func (req *RegisterMemberRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StudentID, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Role, validation.Required, validation.In(
			string(domain.RoleSuperAdmin),
			string(domain.RoleHead),
			string(domain.RoleCoHead),
			string(domain.RoleMember),
		)),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}

type ParticipantSignupRequest struct {
	Name     string  `json:"Name"`
	Email    string  `json:"Email"`
	Password string  `json:"Password"`
	Phone    *string `json:"Phone"`
	College  *string `json:"College"`
}

func (req *ParticipantSignupRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.College, validation.Length(0, 100)),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password)
}
