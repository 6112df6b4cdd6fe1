package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusfest/fest-api/internal/domain"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		name     string
		role     domain.Role
		action   Action
		resource Resource
		want     bool
	}{
		{"anonymous reads events", domain.RoleAnonymous, ActionRead, ResourceEvents, true},
		{"anonymous reads venues", domain.RoleAnonymous, ActionRead, ResourceVenues, true},
		{"anonymous reads tickets", domain.RoleAnonymous, ActionRead, ResourceTickets, true},
		{"anonymous cannot read budget", domain.RoleAnonymous, ActionRead, ResourceBudget, false},
		{"anonymous cannot read members", domain.RoleAnonymous, ActionRead, ResourceMembers, false},
		{"anonymous can sign up as participant", domain.RoleAnonymous, ActionCreate, ResourceParticipants, true},
		{"anonymous cannot create events", domain.RoleAnonymous, ActionCreate, ResourceEvents, false},

		{"member reads budget", domain.RoleMember, ActionRead, ResourceBudget, true},
		{"member cannot create events", domain.RoleMember, ActionCreate, ResourceEvents, false},
		{"member cannot delete venues", domain.RoleMember, ActionDelete, ResourceVenues, false},
		{"member cannot update sponsors", domain.RoleMember, ActionUpdate, ResourceSponsors, false},

		{"co-head creates events", domain.RoleCoHead, ActionCreate, ResourceEvents, true},
		{"co-head cannot delete events", domain.RoleCoHead, ActionDelete, ResourceEvents, false},
		{"co-head cannot delete teams", domain.RoleCoHead, ActionDelete, ResourceTeams, false},

		{"head deletes events", domain.RoleHead, ActionDelete, ResourceEvents, true},
		{"head cannot delete venues", domain.RoleHead, ActionDelete, ResourceVenues, false},
		{"head cannot register members", domain.RoleHead, ActionCreate, ResourceMembers, false},

		{"superadmin deletes venues", domain.RoleSuperAdmin, ActionDelete, ResourceVenues, true},
		{"superadmin deletes members", domain.RoleSuperAdmin, ActionDelete, ResourceMembers, true},
		{"superadmin registers members", domain.RoleSuperAdmin, ActionCreate, ResourceMembers, true},
		{"superadmin deletes registrations", domain.RoleSuperAdmin, ActionDelete, ResourceRegistrations, true},

		{"participant signs up for events", domain.RoleParticipant, ActionCreate, ResourceEventSignup, true},
		{"staff cannot use participant signup flow", domain.RoleSuperAdmin, ActionCreate, ResourceEventSignup, false},
		{"participant reads registrations", domain.RoleParticipant, ActionRead, ResourceRegistrations, true},
		{"participant cannot read dashboard", domain.RoleParticipant, ActionRead, ResourceDashboard, false},
		{"participant cannot create venues", domain.RoleParticipant, ActionCreate, ResourceVenues, false},
		{"participant cannot list participants", domain.RoleParticipant, ActionRead, ResourceParticipants, false},

		{"staff reads dashboard", domain.RoleMember, ActionRead, ResourceDashboard, true},

		{"unknown resource denied", domain.RoleSuperAdmin, ActionRead, Resource("nope"), false},
		{"unknown action denied", domain.RoleSuperAdmin, Action("patch"), ResourceEvents, false},
		{"update not defined for registrations", domain.RoleSuperAdmin, ActionUpdate, ResourceRegistrations, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.role, tt.action, tt.resource))
		})
	}
}

func TestPublic(t *testing.T) {
	assert.True(t, Public(ActionRead, ResourceEvents))
	assert.True(t, Public(ActionRead, ResourceTickets))
	assert.False(t, Public(ActionRead, ResourceBudget))
	assert.False(t, Public(ActionCreate, ResourceEvents))
	assert.True(t, Public(ActionCreate, ResourceParticipants))
}
