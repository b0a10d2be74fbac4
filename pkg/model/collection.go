package model

import "time"

// Collection represents a named grouping of ciphers within an organization.
// It is the unit to which access grants attach.
type Collection struct {
	ID             string    `gorm:"column:id;primaryKey"`
	OrganizationID string    `gorm:"column:organization_id;not null"`
	Name           string    `gorm:"column:name"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Collection) TableName() string {
	return "collections"
}

// CollectionUser is a direct user grant on a collection
type CollectionUser struct {
	CollectionID       string `gorm:"column:collection_id;primaryKey"`
	OrganizationUserID string `gorm:"column:organization_user_id;primaryKey"`
	ReadOnly           bool   `gorm:"column:read_only;not null;default:false"`
	HidePasswords      bool   `gorm:"column:hide_passwords;not null;default:false"`
	Manage             bool   `gorm:"column:manage;not null;default:false"`
}

func (CollectionUser) TableName() string {
	return "collection_users"
}

// CollectionGroup is a group grant on a collection
type CollectionGroup struct {
	CollectionID  string `gorm:"column:collection_id;primaryKey"`
	GroupID       string `gorm:"column:group_id;primaryKey"`
	ReadOnly      bool   `gorm:"column:read_only;not null;default:false"`
	HidePasswords bool   `gorm:"column:hide_passwords;not null;default:false"`
	Manage        bool   `gorm:"column:manage;not null;default:false"`
}

func (CollectionGroup) TableName() string {
	return "collection_groups"
}
