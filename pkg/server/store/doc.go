// Package store defines the storage interfaces consumed by the collection
// service and the access engine.
//
// Implementations live in subpackages (currently only GORM/PostgreSQL).
// Lookups signal absence with nil or empty returns, never with errors;
// a missing row is the normal "denied"/"not found" outcome for the callers
// of these interfaces.
package store
