package response

import "github.com/campusfest/fest-api/internal/domain"

type MemberLoginResponse struct {
	StudentID string      `json:"Student_ID"`
	Name      string      `json:"Name"`
	Role      domain.Role `json:"Role"`
	Token     string      `json:"token"`
}

type ParticipantAuthResponse struct {
	ParticipantID uint        `json:"Participant_ID"`
	Name          string      `json:"Name"`
	Email         string      `json:"Email"`
	Role          domain.Role `json:"Role"`
	Token         string      `json:"token"`
}

func NewMemberLoginResponse(member domain.Member, token string) MemberLoginResponse {
	return MemberLoginResponse{
		StudentID: member.StudentID,
		Name:      member.Name,
		Role:      member.Role,
		Token:     token,
	}
}

func NewParticipantAuthResponse(participant domain.Participant, token string) ParticipantAuthResponse {
	return ParticipantAuthResponse{
		ParticipantID: participant.ID,
		Name:          participant.Name,
		Email:         participant.Email,
		Role:          domain.RoleParticipant,
		Token:         token,
	}
}
