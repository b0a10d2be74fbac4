package store

import "github.com/doodlesbykumbi/vaultorg/pkg/model"

// OrganizationsStore abstracts organization lookups
type OrganizationsStore interface {
	// GetOrganization retrieves an organization by id, nil when absent.
	GetOrganization(id string) *model.Organization
}

// OrgUsersStore abstracts organization membership lookups
type OrgUsersStore interface {
	// GetOrgUser retrieves a membership row by id, nil when absent.
	GetOrgUser(id string) *model.OrganizationUser
}
