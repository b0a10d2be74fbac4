// Package audit provides the event log for collection and membership
// mutations.
//
// Events are written in RFC5424 syslog format and, when AUDIT_DATABASE_URL
// is set, persisted to a messages table. Logging is fire-and-forget from the
// service's perspective: a failed write to the audit database is reported on
// stderr and never fails the operation that produced the event.
//
// # Event Types
//
//   - Collection created / updated / deleted
//   - Organization user updated
//
// # Usage
//
//	audit.Log(audit.CollectionEvent{
//		Type:         audit.EventCollectionCreated,
//		CollectionID: collection.ID,
//	})
package audit
