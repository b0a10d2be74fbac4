package store

import "github.com/doodlesbykumbi/vaultorg/pkg/model"

// CollectionsStore abstracts collection storage operations
type CollectionsStore interface {
	// GetCollection retrieves a collection by id, nil when absent.
	GetCollection(id string) *model.Collection

	// GetManyByOrganizationID returns every collection owned by an
	// organization.
	GetManyByOrganizationID(organizationID string) []model.Collection

	// GetManyByUserID returns the collections a user can resolve a grant
	// for, direct or through a group. The flexible switch selects which
	// model's grant sources apply: legacy mode also honors access-all
	// flags, flexible mode only explicit grants.
	GetManyByUserID(userID string, flexible bool) []model.Collection

	// CountByOrganizationID returns the number of collections an
	// organization owns.
	CountByOrganizationID(organizationID string) int

	// Create persists a new collection together with its access lists in
	// one transaction.
	Create(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection) error

	// Replace swaps a collection's access lists in full, in one
	// transaction. Replacing with the same lists is idempotent.
	Replace(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection) error

	// DeleteUser removes a single user's direct grant from a collection.
	// Group-derived access is unaffected.
	DeleteUser(collectionID, organizationUserID string) error
}
