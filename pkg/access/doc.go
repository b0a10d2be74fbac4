// Package access resolves the effective access a user holds on a cipher.
//
// Two permission models coexist while organizations migrate:
//
//   - legacy: org-wide access-all flags on memberships and groups short-cut
//     every per-collection grant
//   - flexible: only explicit per-collection grants count, and grants carry
//     a manage flag that implies full read/write
//
// The two models are deliberately kept as separate strategies behind one
// Resolver interface rather than unified into a single predicate. Retiring
// access-all is a one-way migration per organization, so both code paths
// must remain simultaneously correct until every organization has moved.
//
// Resolution never returns an error for a disqualified caller; absence of a
// qualifying path is the normal "denied" signal.
package access
