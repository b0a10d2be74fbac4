package endpoints

import (
	"github.com/doodlesbykumbi/vaultorg/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterCollectionsEndpoints(srv)
	RegisterCiphersEndpoints(srv)
}
