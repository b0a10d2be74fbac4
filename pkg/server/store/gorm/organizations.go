package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/store"
)

// Ensure OrganizationsStore implements store.OrganizationsStore
var _ store.OrganizationsStore = (*OrganizationsStore)(nil)

// OrganizationsStore implements store.OrganizationsStore using GORM
type OrganizationsStore struct {
	db *gorm.DB
}

// NewOrganizationsStore creates a new OrganizationsStore
func NewOrganizationsStore(db *gorm.DB) *OrganizationsStore {
	return &OrganizationsStore{db: db}
}

// GetOrganization retrieves an organization by id, nil when absent.
func (s *OrganizationsStore) GetOrganization(id string) *model.Organization {
	var org model.Organization
	result := s.db.First(&org, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil
	}
	if result.Error != nil {
		return nil
	}
	return &org
}

// Ensure OrgUsersStore implements store.OrgUsersStore
var _ store.OrgUsersStore = (*OrgUsersStore)(nil)

// OrgUsersStore implements store.OrgUsersStore using GORM
type OrgUsersStore struct {
	db *gorm.DB
}

// NewOrgUsersStore creates a new OrgUsersStore
func NewOrgUsersStore(db *gorm.DB) *OrgUsersStore {
	return &OrgUsersStore{db: db}
}

// GetOrgUser retrieves a membership row by id, nil when absent.
func (s *OrgUsersStore) GetOrgUser(id string) *model.OrganizationUser {
	var orgUser model.OrganizationUser
	result := s.db.First(&orgUser, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil
	}
	if result.Error != nil {
		return nil
	}
	return &orgUser
}
