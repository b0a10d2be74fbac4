package model

// OrganizationUser represents a user's membership in an organization.
// UserID is null until an invite is claimed, so access checks join on it
// as a nullable column.
type OrganizationUser struct {
	ID             string                 `gorm:"column:id;primaryKey"`
	OrganizationID string                 `gorm:"column:organization_id;not null"`
	UserID         *string                `gorm:"column:user_id"`
	Status         OrganizationUserStatus `gorm:"column:status;not null;default:0"`

	// AccessAll is the legacy model's implicit grant to every collection
	// in the organization. The flexible model never reads it.
	AccessAll bool `gorm:"column:access_all;not null;default:false"`
}

func (OrganizationUser) TableName() string {
	return "organization_users"
}

// Confirmed reports whether this membership counts as active for access
// checks. Only Confirmed status qualifies.
func (ou *OrganizationUser) Confirmed() bool {
	return ou.Status == OrganizationUserStatusConfirmed
}
