// Package endpoints registers the HTTP API handlers: collection listing and
// mutation under /organizations/{orgId}/collections, and the edit-gated
// cipher read under /ciphers/{id}.
package endpoints
