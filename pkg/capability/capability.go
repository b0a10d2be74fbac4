// Package capability models the organization-scoped capabilities a caller
// holds for one request.
//
// The capabilities are resolved once at the request boundary into a Set and
// passed down, so downstream branching is a set-membership test instead of
// repeated per-capability lookups.
package capability

// Capability names one organization-scoped permission a caller can hold.
type Capability string

const (
	ViewAssignedCollections Capability = "view-assigned-collections"
	ViewAllCollections      Capability = "view-all-collections"
	ManageUsers             Capability = "manage-users"
	ManageGroups            Capability = "manage-groups"
	AccessImportExport      Capability = "access-import-export"
)

// Set is the resolved capability set for one (caller, organization) pair.
type Set map[Capability]struct{}

// NewSet builds a Set from the given capabilities.
func NewSet(caps ...Capability) Set {
	set := make(Set, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the capability.
func (s Set) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// HasAny reports whether the set contains at least one of the capabilities.
func (s Set) HasAny(caps ...Capability) bool {
	for _, c := range caps {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// OrgUserType is the coarse role of an organization membership, used to
// derive a default capability set when no finer-grained permissions are
// recorded.
type OrgUserType int

const (
	OrgUserTypeOwner OrgUserType = iota
	OrgUserTypeAdmin
	OrgUserTypeUser
)

// FromOrgUserType derives the default capability set for a membership role.
// Owners and admins see and manage everything; plain users only see the
// collections assigned to them.
func FromOrgUserType(t OrgUserType) Set {
	switch t {
	case OrgUserTypeOwner, OrgUserTypeAdmin:
		return NewSet(
			ViewAssignedCollections,
			ViewAllCollections,
			ManageUsers,
			ManageGroups,
			AccessImportExport,
		)
	default:
		return NewSet(ViewAssignedCollections)
	}
}
