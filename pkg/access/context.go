package access

import "github.com/doodlesbykumbi/vaultorg/pkg/model"

// GroupMembership is one of the caller's groups within the cipher's
// organization, with the group's grants on the cipher's collections.
type GroupMembership struct {
	GroupID string

	// AccessAll carries the group's legacy implicit grant. Ignored by the
	// flexible strategy.
	AccessAll bool

	// Grants are the group's CollectionGroup rows restricted to the
	// cipher's collections.
	Grants []model.CollectionGroup
}

// CipherContext is the gathered state needed to resolve one (user, cipher)
// pair. The store assembles it; the strategies only read it. A nil field
// means the corresponding row does not exist, which resolves to no access
// rather than an error.
type CipherContext struct {
	UserID string
	Cipher *model.Cipher

	// Organization and OrgUser are nil for personal ciphers and for
	// callers with no membership in the owning organization.
	Organization *model.Organization
	OrgUser      *model.OrganizationUser

	// CollectionIDs are the collections the cipher belongs to.
	CollectionIDs []string

	// UserGrants are the caller's direct CollectionUser rows restricted
	// to the cipher's collections.
	UserGrants []model.CollectionUser

	// Groups are the caller's group memberships in the organization.
	Groups []GroupMembership
}

// memberEligible reports whether the organization path is open at all:
// confirmed membership in an enabled organization. Collection grants are
// irrelevant when this fails.
func (c *CipherContext) memberEligible() bool {
	return c.Organization != nil && c.Organization.Enabled &&
		c.OrgUser != nil && c.OrgUser.Confirmed()
}

// inCollections reports whether id is one of the cipher's collections.
func (c *CipherContext) inCollections(id string) bool {
	for _, cid := range c.CollectionIDs {
		if cid == id {
			return true
		}
	}
	return false
}
