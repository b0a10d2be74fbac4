package model

//go:generate go run github.com/dmarkham/enumer -type OrganizationUserStatus -trimprefix OrganizationUserStatus -transform lower -output organization_user_status.gen.go

// OrganizationUserStatus is the lifecycle state of an organization membership
type OrganizationUserStatus int

const (
	OrganizationUserStatusInvited  OrganizationUserStatus = 0
	OrganizationUserStatusAccepted OrganizationUserStatus = 1
	// OrganizationUserStatusConfirmed is the only status that counts as
	// active for access checks.
	OrganizationUserStatusConfirmed OrganizationUserStatus = 2
	OrganizationUserStatusRevoked   OrganizationUserStatus = -1
)
