package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/vaultorg/pkg/flags"
	"github.com/doodlesbykumbi/vaultorg/pkg/server"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/middleware"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/store"
)

// CipherResponse is the API representation of a cipher
type CipherResponse struct {
	ID             string  `json:"id"`
	UserID         *string `json:"userId,omitempty"`
	OrganizationID *string `json:"organizationId,omitempty"`
}

func RegisterCiphersEndpoints(s *server.Server) {
	registerCiphersEndpoints(s.Router, s.Ciphers, s.Flags, s.JWTMiddleware.Middleware)
}

func registerCiphersEndpoints(router *mux.Router, ciphersStore store.CiphersStore, oracle flags.Oracle, authn mux.MiddlewareFunc) {
	ciphersRouter := router.PathPrefix("/ciphers").Subrouter()
	ciphersRouter.Use(authn)

	// GET /ciphers/{id} - Fetch a cipher the caller may edit
	ciphersRouter.HandleFunc("/{id}", handleFetchEditableCipher(ciphersStore, oracle)).Methods("GET")
}

// handleFetchEditableCipher answers 404 for missing and non-editable ciphers
// alike.
func handleFetchEditableCipher(ciphersStore store.CiphersStore, oracle flags.Oracle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cipherID := mux.Vars(r)["id"]
		id := middleware.FromContext(r.Context())

		flexible := oracle.IsEnabled(flags.FlexibleCollectionsV1)

		cipher := ciphersStore.FetchCanEditByIDUserID(id.UserID, cipherID, flexible)
		if cipher == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		respondWithJSON(w, http.StatusOK, CipherResponse{
			ID:             cipher.ID,
			UserID:         cipher.UserID,
			OrganizationID: cipher.OrganizationID,
		})
	}
}
