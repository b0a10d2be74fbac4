package audit

import "fmt"

// EventType is the numeric event code persisted with each event. The codes
// match the upstream vault server's event table so downstream consumers can
// share tooling.
type EventType int

const (
	EventCollectionCreated       EventType = 1300
	EventCollectionUpdated       EventType = 1301
	EventCollectionDeleted       EventType = 1302
	EventOrganizationUserUpdated EventType = 1502
)

// String returns the stable wire name of the event type.
func (t EventType) String() string {
	switch t {
	case EventCollectionCreated:
		return "collection-created"
	case EventCollectionUpdated:
		return "collection-updated"
	case EventCollectionDeleted:
		return "collection-deleted"
	case EventOrganizationUserUpdated:
		return "organization-user-updated"
	default:
		return fmt.Sprintf("event-%d", int(t))
	}
}

// CollectionEvent records a collection lifecycle change
type CollectionEvent struct {
	Type           EventType
	CollectionID   string
	OrganizationID string
	ActingUserID   string
}

func (e CollectionEvent) MessageID() string {
	return e.Type.String()
}

func (e CollectionEvent) Message() string {
	return fmt.Sprintf("collection %s: %s", e.CollectionID, e.Type)
}

func (e CollectionEvent) Severity() Severity {
	return SeverityInfo
}

func (e CollectionEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CollectionEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"collection": e.CollectionID,
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
