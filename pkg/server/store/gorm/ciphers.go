package gorm

import (
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/vaultorg/pkg/access"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/store"
)

// Ensure CiphersStore implements store.CiphersStore
var _ store.CiphersStore = (*CiphersStore)(nil)

// CiphersStore implements store.CiphersStore using GORM
type CiphersStore struct {
	db *gorm.DB
}

// NewCiphersStore creates a new CiphersStore
func NewCiphersStore(db *gorm.DB) *CiphersStore {
	return &CiphersStore{db: db}
}

// canEditFlexibleQuery only counts explicit user or group grants. A joined
// row qualifies for edit when its grant is not read-only or carries manage.
const canEditFlexibleQuery = `
	SELECT DISTINCT c.id, c.user_id, c.organization_id, c.created_at
	FROM ciphers c
	LEFT JOIN organizations o
		ON c.user_id IS NULL AND o.id = c.organization_id
	LEFT JOIN organization_users ou
		ON ou.organization_id = o.id AND ou.user_id = ?
	LEFT JOIN collection_ciphers cc
		ON c.user_id IS NULL AND cc.cipher_id = c.id
	LEFT JOIN collection_users cu
		ON cu.collection_id = cc.collection_id AND cu.organization_user_id = ou.id
	LEFT JOIN group_users gu
		ON c.user_id IS NULL AND cu.collection_id IS NULL AND gu.organization_user_id = ou.id
	LEFT JOIN groups g
		ON g.id = gu.group_id
	LEFT JOIN collection_groups cg
		ON cg.collection_id = cc.collection_id AND cg.group_id = gu.group_id
	WHERE c.id = ?
	AND (
		c.user_id = ?
		OR (
			c.user_id IS NULL AND ou.status = 2 AND o.enabled
			AND (cu.collection_id IS NOT NULL OR cg.collection_id IS NOT NULL)
		)
	)
	AND (c.user_id IS NOT NULL OR cu.manage OR NOT cu.read_only OR cg.manage OR NOT cg.read_only)
`

// canEditLegacyQuery carries the access-all short-circuits: an access-all
// membership or group suppresses the grant joins and is always editable.
const canEditLegacyQuery = `
	SELECT DISTINCT c.id, c.user_id, c.organization_id, c.created_at
	FROM ciphers c
	LEFT JOIN organizations o
		ON c.user_id IS NULL AND o.id = c.organization_id
	LEFT JOIN organization_users ou
		ON ou.organization_id = o.id AND ou.user_id = ?
	LEFT JOIN collection_ciphers cc
		ON c.user_id IS NULL AND NOT ou.access_all AND cc.cipher_id = c.id
	LEFT JOIN collection_users cu
		ON cu.collection_id = cc.collection_id AND cu.organization_user_id = ou.id
	LEFT JOIN group_users gu
		ON c.user_id IS NULL AND cu.collection_id IS NULL AND NOT ou.access_all AND gu.organization_user_id = ou.id
	LEFT JOIN groups g
		ON g.id = gu.group_id
	LEFT JOIN collection_groups cg
		ON NOT g.access_all AND cg.collection_id = cc.collection_id AND cg.group_id = gu.group_id
	WHERE c.id = ?
	AND (
		c.user_id = ?
		OR (
			c.user_id IS NULL AND ou.status = 2 AND o.enabled
			AND (ou.access_all OR cu.collection_id IS NOT NULL OR g.access_all OR cg.collection_id IS NOT NULL)
		)
	)
	AND (c.user_id IS NOT NULL OR ou.access_all OR cu.manage OR NOT cu.read_only OR g.access_all OR cg.manage OR NOT cg.read_only)
`

// FetchCanEditByIDUserID returns the cipher iff the user may edit it under
// the selected model.
func (s *CiphersStore) FetchCanEditByIDUserID(userID, cipherID string, flexible bool) *model.Cipher {
	query := canEditLegacyQuery
	if flexible {
		query = canEditFlexibleQuery
	}

	var ciphers []model.Cipher
	s.db.Raw(query, userID, cipherID, userID).Scan(&ciphers)
	if len(ciphers) == 0 {
		return nil
	}
	return &ciphers[0]
}

// FetchCipherContext gathers the rows the predicate engine needs to resolve
// one (user, cipher) pair.
func (s *CiphersStore) FetchCipherContext(userID, cipherID string) access.CipherContext {
	ctx := access.CipherContext{UserID: userID}

	var cipher model.Cipher
	if s.db.First(&cipher, "id = ?", cipherID).Error != nil {
		return ctx
	}
	ctx.Cipher = &cipher

	if cipher.OrganizationID == nil {
		return ctx
	}

	var org model.Organization
	if s.db.First(&org, "id = ?", *cipher.OrganizationID).Error == nil {
		ctx.Organization = &org
	}

	var orgUser model.OrganizationUser
	result := s.db.First(&orgUser, "organization_id = ? AND user_id = ?", *cipher.OrganizationID, userID)
	if result.Error != nil {
		return ctx
	}
	ctx.OrgUser = &orgUser

	s.db.Raw(`
		SELECT collection_id FROM collection_ciphers WHERE cipher_id = ?
	`, cipherID).Scan(&ctx.CollectionIDs)

	s.db.Raw(`
		SELECT collection_id, organization_user_id, read_only, hide_passwords, manage
		FROM collection_users
		WHERE organization_user_id = ?
	`, orgUser.ID).Scan(&ctx.UserGrants)

	var groups []model.Group
	s.db.Raw(`
		SELECT g.id, g.organization_id, g.name, g.access_all
		FROM groups g
		JOIN group_users gu ON gu.group_id = g.id
		WHERE gu.organization_user_id = ? AND g.organization_id = ?
	`, orgUser.ID, *cipher.OrganizationID).Scan(&groups)

	for _, g := range groups {
		membership := access.GroupMembership{GroupID: g.ID, AccessAll: g.AccessAll}
		s.db.Raw(`
			SELECT collection_id, group_id, read_only, hide_passwords, manage
			FROM collection_groups
			WHERE group_id = ?
		`, g.ID).Scan(&membership.Grants)
		ctx.Groups = append(ctx.Groups, membership)
	}

	return ctx
}
