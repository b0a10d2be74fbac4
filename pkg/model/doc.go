// Package model defines the database models for the vault organization core.
//
// This package contains GORM models that map to the organization/collection
// schema. The schema mirrors the upstream vault server's PostgreSQL layout so
// both permission models (legacy access-all flags and flexible per-collection
// grants) can be evaluated against the same rows during the migration window.
//
// # Core Models
//
//   - Organization: a tenant owning collections, users, groups, and ciphers
//   - OrganizationUser: membership record binding a user to an organization
//   - Group / GroupUser: organization-scoped groups and their members
//   - Collection: a named grouping of ciphers, the unit grants attach to
//   - CollectionUser / CollectionGroup: grant rows with read-only,
//     hide-passwords, and manage flags
//   - Cipher / CollectionCipher: vault items and their collection memberships
//
// # Database Schema
//
// The database uses PostgreSQL with the following key tables:
//
//   - organizations
//   - organization_users
//   - groups, group_users
//   - collections, collection_users, collection_groups
//   - ciphers, collection_ciphers
package model
