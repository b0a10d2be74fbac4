package model

import "time"

// Cipher represents a vault item. Exactly one of UserID (personal item) or
// OrganizationID (organization item) is set, never both and never neither.
type Cipher struct {
	ID             string    `gorm:"column:id;primaryKey"`
	UserID         *string   `gorm:"column:user_id"`
	OrganizationID *string   `gorm:"column:organization_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Cipher) TableName() string {
	return "ciphers"
}

// Personal reports whether the cipher is owned by an individual user rather
// than an organization.
func (c *Cipher) Personal() bool {
	return c.UserID != nil
}

// OwnedBy reports whether the cipher is the personal item of the given user.
func (c *Cipher) OwnedBy(userID string) bool {
	return c.UserID != nil && *c.UserID == userID
}

// CollectionCipher links a cipher to a collection. An organization cipher can
// belong to any number of collections.
type CollectionCipher struct {
	CollectionID string `gorm:"column:collection_id;primaryKey"`
	CipherID     string `gorm:"column:cipher_id;primaryKey"`
}

func (CollectionCipher) TableName() string {
	return "collection_ciphers"
}
