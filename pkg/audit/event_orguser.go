package audit

import "fmt"

// OrganizationUserEvent records a change to an organization membership, such
// as a direct collection grant being revoked.
type OrganizationUserEvent struct {
	Type               EventType
	OrganizationUserID string
	OrganizationID     string
	ActingUserID       string
}

func (e OrganizationUserEvent) MessageID() string {
	return e.Type.String()
}

func (e OrganizationUserEvent) Message() string {
	return fmt.Sprintf("organization user %s: %s", e.OrganizationUserID, e.Type)
}

func (e OrganizationUserEvent) Severity() Severity {
	return SeverityInfo
}

func (e OrganizationUserEvent) Facility() int {
	return FacilityAuthPriv
}

func (e OrganizationUserEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"organization_user": e.OrganizationUserID,
		},
		SDIDOrg: {
			"organization": e.OrganizationID,
		},
		SDIDAction: {
			"operation": e.Type.String(),
			"type":      fmt.Sprintf("%d", int(e.Type)),
			"user":      e.ActingUserID,
		},
	}
}
