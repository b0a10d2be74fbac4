package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/store"
)

// Ensure CollectionsStore implements store.CollectionsStore
var _ store.CollectionsStore = (*CollectionsStore)(nil)

// CollectionsStore implements store.CollectionsStore using GORM
type CollectionsStore struct {
	db *gorm.DB
}

// NewCollectionsStore creates a new CollectionsStore
func NewCollectionsStore(db *gorm.DB) *CollectionsStore {
	return &CollectionsStore{db: db}
}

// GetCollection retrieves a collection by id, nil when absent.
func (s *CollectionsStore) GetCollection(id string) *model.Collection {
	var collection model.Collection
	result := s.db.First(&collection, "id = ?", id)
	if result.Error != nil {
		return nil
	}
	return &collection
}

// GetManyByOrganizationID returns every collection owned by an organization.
func (s *CollectionsStore) GetManyByOrganizationID(organizationID string) []model.Collection {
	var collections []model.Collection
	s.db.Raw(`
		SELECT id, organization_id, name, created_at
		FROM collections
		WHERE organization_id = ?
		ORDER BY name
	`, organizationID).Scan(&collections)
	return collections
}

// GetManyByUserID returns the collections a user can resolve a grant for.
// The legacy variant honors the access-all short-circuits on memberships and
// groups; the flexible variant only counts explicit grants.
func (s *CollectionsStore) GetManyByUserID(userID string, flexible bool) []model.Collection {
	query := `
		SELECT DISTINCT c.id, c.organization_id, c.name, c.created_at
		FROM collections c
		JOIN organizations o
			ON o.id = c.organization_id AND o.enabled
		JOIN organization_users ou
			ON ou.organization_id = o.id AND ou.user_id = ? AND ou.status = 2
		LEFT JOIN collection_users cu
			ON cu.collection_id = c.id AND cu.organization_user_id = ou.id
		LEFT JOIN group_users gu
			ON gu.organization_user_id = ou.id
		LEFT JOIN groups g
			ON g.id = gu.group_id
		LEFT JOIN collection_groups cg
			ON cg.collection_id = c.id AND cg.group_id = gu.group_id
	`
	if flexible {
		query += `WHERE cu.collection_id IS NOT NULL OR cg.collection_id IS NOT NULL`
	} else {
		query += `WHERE ou.access_all OR cu.collection_id IS NOT NULL OR g.access_all OR cg.collection_id IS NOT NULL`
	}

	var collections []model.Collection
	s.db.Raw(query, userID).Scan(&collections)
	return collections
}

// CountByOrganizationID returns the number of collections an organization owns.
func (s *CollectionsStore) CountByOrganizationID(organizationID string) int {
	var count int
	s.db.Raw(`SELECT COUNT(*) FROM collections WHERE organization_id = ?`, organizationID).Scan(&count)
	return count
}

// Create persists a new collection together with its access lists in one
// transaction.
func (s *CollectionsStore) Create(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(collection).Error; err != nil {
			return err
		}
		return writeAccessLists(tx, collection.ID, groupAccess, userAccess)
	})
}

// Replace swaps a collection's access lists in full, in one transaction.
func (s *CollectionsStore) Replace(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(collection).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM collection_users WHERE collection_id = ?`, collection.ID).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM collection_groups WHERE collection_id = ?`, collection.ID).Error; err != nil {
			return err
		}
		return writeAccessLists(tx, collection.ID, groupAccess, userAccess)
	})
}

// DeleteUser removes a single user's direct grant from a collection.
func (s *CollectionsStore) DeleteUser(collectionID, organizationUserID string) error {
	return s.db.Exec(`
		DELETE FROM collection_users
		WHERE collection_id = ? AND organization_user_id = ?
	`, collectionID, organizationUserID).Error
}

func writeAccessLists(tx *gorm.DB, collectionID string, groupAccess, userAccess []model.CollectionAccessSelection) error {
	for _, g := range groupAccess {
		row := model.CollectionGroup{
			CollectionID:  collectionID,
			GroupID:       g.ID,
			ReadOnly:      g.ReadOnly,
			HidePasswords: g.HidePasswords,
			Manage:        g.Manage,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, u := range userAccess {
		row := model.CollectionUser{
			CollectionID:       collectionID,
			OrganizationUserID: u.ID,
			ReadOnly:           u.ReadOnly,
			HidePasswords:      u.HidePasswords,
			Manage:             u.Manage,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
