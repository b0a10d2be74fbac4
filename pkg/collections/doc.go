// Package collections implements the collection service: saving a
// collection with its access lists, listing the collections visible to a
// caller, and revoking a single user's direct grant.
//
// Save enforces two invariants before anything is written: in flexible mode
// every collection must keep at least one manage-capable grant (unless the
// organization allows admin access to all collection items), and an
// organization with a max-collections quota cannot create past it. Events
// are emitted strictly after the write succeeds.
package collections
