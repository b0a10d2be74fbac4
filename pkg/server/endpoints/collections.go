package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/vaultorg/pkg/capability"
	"github.com/doodlesbykumbi/vaultorg/pkg/collections"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/server"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/middleware"
)

// CollectionsService is the slice of the collection service the handlers
// depend on.
type CollectionsService interface {
	Save(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection, actingUserID string) error
	DeleteUser(collection *model.Collection, organizationUserID, actingUserID string) error
	GetCollection(organizationID, id string) (*model.Collection, error)
	GetOrganizationCollections(organizationID string, caps capability.Set, userID string) ([]model.Collection, error)
}

// CollectionRequest is the body for collection create and replace
type CollectionRequest struct {
	Name   string                            `json:"name"`
	Groups []model.CollectionAccessSelection `json:"groups"`
	Users  []model.CollectionAccessSelection `json:"users"`
}

// CollectionResponse is the API representation of a collection
type CollectionResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
}

func collectionResponse(c *model.Collection) CollectionResponse {
	return CollectionResponse{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
	}
}

func RegisterCollectionsEndpoints(s *server.Server) {
	registerCollectionsEndpoints(s.Router, s.Collections, s.JWTMiddleware.Middleware)
}

func registerCollectionsEndpoints(router *mux.Router, service CollectionsService, authn mux.MiddlewareFunc) {
	collectionsRouter := router.PathPrefix("/organizations/{orgId}/collections").Subrouter()
	collectionsRouter.Use(authn)

	// GET /organizations/{orgId}/collections - List visible collections
	collectionsRouter.HandleFunc("", handleListCollections(service)).Methods("GET")

	// POST /organizations/{orgId}/collections - Create a collection
	collectionsRouter.HandleFunc("", handleCreateCollection(service)).Methods("POST")

	// PUT /organizations/{orgId}/collections/{id} - Replace a collection
	collectionsRouter.HandleFunc("/{id}", handleReplaceCollection(service)).Methods("PUT")

	// DELETE /organizations/{orgId}/collections/{id}/user/{orgUserId} - Revoke a direct grant
	collectionsRouter.HandleFunc("/{id}/user/{orgUserId}", handleDeleteCollectionUser(service)).Methods("DELETE")
}

// writeServiceError maps service errors onto HTTP statuses. Not-found keeps
// an empty body so probing callers learn nothing beyond the status.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, collections.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if collections.IsValidation(err) {
		respondWithJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func handleListCollections(service CollectionsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID := mux.Vars(r)["orgId"]

		id := middleware.FromContext(r.Context())
		caps := id.CapabilitySet(orgID)

		result, err := service.GetOrganizationCollections(orgID, caps, id.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		response := make([]CollectionResponse, 0, len(result))
		for i := range result {
			response = append(response, collectionResponse(&result[i]))
		}
		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleCreateCollection(service CollectionsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID := mux.Vars(r)["orgId"]
		id := middleware.FromContext(r.Context())

		var req CollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		collection := &model.Collection{
			OrganizationID: orgID,
			Name:           req.Name,
		}

		if err := service.Save(collection, req.Groups, req.Users, id.UserID); err != nil {
			writeServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, collectionResponse(collection))
	}
}

func handleReplaceCollection(service CollectionsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		orgID := vars["orgId"]
		id := middleware.FromContext(r.Context())

		var req CollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		collection, err := service.GetCollection(orgID, vars["id"])
		if err != nil {
			writeServiceError(w, err)
			return
		}

		collection.Name = req.Name
		if err := service.Save(collection, req.Groups, req.Users, id.UserID); err != nil {
			writeServiceError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, collectionResponse(collection))
	}
}

func handleDeleteCollectionUser(service CollectionsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		orgID := vars["orgId"]
		id := middleware.FromContext(r.Context())

		collection, err := service.GetCollection(orgID, vars["id"])
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if err := service.DeleteUser(collection, vars["orgUserId"], id.UserID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
