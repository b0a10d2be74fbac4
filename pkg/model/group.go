package model

// Group represents an organization-scoped group of members
type Group struct {
	ID             string `gorm:"column:id;primaryKey"`
	OrganizationID string `gorm:"column:organization_id;not null"`
	Name           string `gorm:"column:name"`

	// AccessAll is the legacy model's implicit grant to every collection
	// in the organization for the group's members. The flexible model
	// never reads it.
	AccessAll bool `gorm:"column:access_all;not null;default:false"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupUser links an organization user to a group
type GroupUser struct {
	GroupID            string `gorm:"column:group_id;primaryKey"`
	OrganizationUserID string `gorm:"column:organization_user_id;primaryKey"`
}

func (GroupUser) TableName() string {
	return "group_users"
}
