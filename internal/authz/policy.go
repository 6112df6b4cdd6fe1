// Package authz holds the declarative authorization policy: a single
// (resource, action) -> allowed-roles table consulted once per request.
// Route handlers never check roles themselves.
package authz

import "github.com/campusfest/fest-api/internal/domain"

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Resource string

const (
	ResourceEvents        Resource = "events"
	ResourceVenues        Resource = "venues"
	ResourcePerformers    Resource = "performers"
	ResourceSponsors      Resource = "sponsors"
	ResourceTeams         Resource = "teams"
	ResourceDays          Resource = "days"
	ResourceBudget        Resource = "budget"
	ResourceMembers       Resource = "members"
	ResourceParticipants  Resource = "participants"
	ResourceRegistrations Resource = "registrations"
	ResourceManagement    Resource = "management"
	ResourceSponsorships  Resource = "sponsorships"
	ResourceTickets       Resource = "tickets"
	ResourceEventSignup   Resource = "event_signup"
	ResourceDashboard     Resource = "dashboard"
)

// Role sets used in the policy table. The per-resource rows are spelled out
// on purpose: the role hierarchy is not uniformly nested (event delete admits
// Head, most other deletes are SuperAdmin-only), so nothing here is inferred
// from role ordering.
var (
	public     = []domain.Role{domain.RoleAnonymous, domain.RoleSuperAdmin, domain.RoleHead, domain.RoleCoHead, domain.RoleMember, domain.RoleParticipant}
	staff      = []domain.Role{domain.RoleSuperAdmin, domain.RoleHead, domain.RoleCoHead, domain.RoleMember}
	organizers = []domain.Role{domain.RoleSuperAdmin, domain.RoleHead, domain.RoleCoHead}
	superOnly  = []domain.Role{domain.RoleSuperAdmin}
	headUp     = []domain.Role{domain.RoleSuperAdmin, domain.RoleHead}

	// staffOrSelf marks rows where a participant may also act, limited to
	// their own records; the ownership check is the controller's job since
	// the table only sees roles.
	staffOrSelf = []domain.Role{domain.RoleSuperAdmin, domain.RoleHead, domain.RoleCoHead, domain.RoleMember, domain.RoleParticipant}
)

var policy = map[Resource]map[Action][]domain.Role{
	ResourceEvents: {
		ActionRead:   public,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: headUp,
	},
	ResourceVenues: {
		ActionRead:   public,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourcePerformers: {
		ActionRead:   public,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceSponsors: {
		ActionRead:   public,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceTeams: {
		ActionRead:   public,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceDays: {
		ActionRead:   public,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceBudget: {
		ActionRead:   staff,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceMembers: {
		ActionRead:   staff,
		ActionCreate: superOnly, // member registration is the SuperAdmin's call
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceParticipants: {
		ActionRead:   staff,
		ActionCreate: public, // self-service signup
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceRegistrations: {
		ActionRead:   staffOrSelf,
		ActionCreate: organizers,
		ActionDelete: superOnly,
	},
	ResourceManagement: {
		ActionRead:   staff,
		ActionCreate: organizers,
		ActionDelete: superOnly,
	},
	ResourceSponsorships: {
		ActionRead:   staff,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceTickets: {
		ActionRead:   public,
		ActionCreate: organizers,
		ActionUpdate: organizers,
		ActionDelete: superOnly,
	},
	ResourceEventSignup: {
		ActionCreate: {domain.RoleParticipant},
	},
	ResourceDashboard: {
		ActionRead: staff,
	},
}

// Allow reports whether the given role may perform action on resource.
// Unknown resources and actions are denied.
func Allow(role domain.Role, action Action, resource Resource) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}

	allowed, ok := actions[action]
	if !ok {
		return false
	}

	for _, r := range allowed {
		if r == role {
			return true
		}
	}

	return false
}

// Public reports whether the (resource, action) pair is open to
// unauthenticated callers.
func Public(action Action, resource Resource) bool {
	return Allow(domain.RoleAnonymous, action, resource)
}
