package endpoints

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"github.com/doodlesbykumbi/vaultorg/pkg/access"
	"github.com/doodlesbykumbi/vaultorg/pkg/capability"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/middleware"
)

// MockCollectionsService implements CollectionsService for handler tests
// using testify/mock
type MockCollectionsService struct {
	mock.Mock
}

func (m *MockCollectionsService) Save(collection *model.Collection, groupAccess, userAccess []model.CollectionAccessSelection, actingUserID string) error {
	args := m.Called(collection, groupAccess, userAccess, actingUserID)
	return args.Error(0)
}

func (m *MockCollectionsService) DeleteUser(collection *model.Collection, organizationUserID, actingUserID string) error {
	args := m.Called(collection, organizationUserID, actingUserID)
	return args.Error(0)
}

func (m *MockCollectionsService) GetCollection(organizationID, id string) (*model.Collection, error) {
	args := m.Called(organizationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collection), args.Error(1)
}

func (m *MockCollectionsService) GetOrganizationCollections(organizationID string, caps capability.Set, userID string) ([]model.Collection, error) {
	args := m.Called(organizationID, caps, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collection), args.Error(1)
}

// MockCiphersStore implements store.CiphersStore for handler tests using
// testify/mock
type MockCiphersStore struct {
	mock.Mock
}

func (m *MockCiphersStore) FetchCanEditByIDUserID(userID, cipherID string, flexible bool) *model.Cipher {
	args := m.Called(userID, cipherID, flexible)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Cipher)
}

func (m *MockCiphersStore) FetchCipherContext(userID, cipherID string) access.CipherContext {
	args := m.Called(userID, cipherID)
	return args.Get(0).(access.CipherContext)
}

// identityMiddleware stands in for the JWT middleware and injects a fixed
// caller identity.
func identityMiddleware(id *middleware.Identity) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.IdentityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
