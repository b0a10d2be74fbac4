// Package server wires the HTTP API: router, stores, and the collection
// service. Endpoint registration lives in the endpoints subpackage.
package server
