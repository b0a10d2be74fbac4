// Package gorm provides GORM/PostgreSQL implementations of the store
// interfaces.
//
// The dual-model cipher access query lives here: the legacy and flexible
// variants differ structurally (the legacy joins carry access-all
// short-circuits that the flexible ones omit), so they are kept as two
// separate SQL builders rather than one parameterized statement.
package gorm
