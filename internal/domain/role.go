package domain

// Role determines authorization outcomes. Staff members carry one of the
// four committee roles; public users authenticated by email carry
// RoleParticipant. The zero value stands for an unauthenticated caller.
type Role string

const (
	RoleAnonymous   Role = ""
	RoleSuperAdmin  Role = "SuperAdmin"
	RoleHead        Role = "Head"
	RoleCoHead      Role = "Co-head"
	RoleMember      Role = "Member"
	RoleParticipant Role = "Participant"
)

// StaffRoles lists the roles a committee member may hold.
var StaffRoles = []Role{RoleSuperAdmin, RoleHead, RoleCoHead, RoleMember}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleHead, RoleCoHead, RoleMember, RoleParticipant:
		return Role(s), true
	}

	return RoleAnonymous, false
}

// IsStaff reports whether the role belongs to a committee member.
func (r Role) IsStaff() bool {
	switch r {
	case RoleSuperAdmin, RoleHead, RoleCoHead, RoleMember:
		return true
	}

	return false
}

// RequiresTeam reports whether a member holding this role must be assigned
// to a team. SuperAdmins sit outside the team structure.
func (r Role) RequiresTeam() bool {
	return r.IsStaff() && r != RoleSuperAdmin
}
