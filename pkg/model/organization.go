package model

import "time"

// Organization represents a tenant that owns collections, users, and groups
type Organization struct {
	ID      string `gorm:"column:id;primaryKey"`
	Name    string `gorm:"column:name"`
	Enabled bool   `gorm:"column:enabled;not null;default:true"`

	// UseGroups controls whether group grants are honored at all. When
	// false, group access lists are dropped on save.
	UseGroups bool `gorm:"column:use_groups;not null;default:false"`

	// AllowAdminAccessToAllCollectionItems relaxes the requirement that
	// every collection keeps at least one manage-capable grant.
	AllowAdminAccessToAllCollectionItems bool `gorm:"column:allow_admin_access_to_all_collection_items;not null;default:false"`

	// MaxCollections bounds the collection count when set. Enforced at
	// creation time only.
	MaxCollections *int `gorm:"column:max_collections"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Organization) TableName() string {
	return "organizations"
}
