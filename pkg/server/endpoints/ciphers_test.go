package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doodlesbykumbi/vaultorg/pkg/flags"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/middleware"
)

func newCiphersRouter(ciphersStore *MockCiphersStore, oracle flags.Oracle) *mux.Router {
	router := mux.NewRouter().UseEncodedPath()
	registerCiphersEndpoints(router, ciphersStore, oracle, identityMiddleware(&middleware.Identity{UserID: "user-1"}))
	return router
}

func TestFetchEditableCipher(t *testing.T) {
	ciphersStore := new(MockCiphersStore)
	router := newCiphersRouter(ciphersStore, flags.Static{})

	orgID := "org-1"
	ciphersStore.On("FetchCanEditByIDUserID", "user-1", "cipher-1", false).
		Return(&model.Cipher{ID: "cipher-1", OrganizationID: &orgID})

	req := httptest.NewRequest("GET", "/ciphers/cipher-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response CipherResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "cipher-1", response.ID)
	require.NotNil(t, response.OrganizationID)
	assert.Equal(t, "org-1", *response.OrganizationID)
	ciphersStore.AssertExpectations(t)
}

func TestFetchEditableCipherUsesFlexibleModelWhenFlagged(t *testing.T) {
	ciphersStore := new(MockCiphersStore)
	router := newCiphersRouter(ciphersStore, flags.Static{flags.FlexibleCollectionsV1: true})

	ciphersStore.On("FetchCanEditByIDUserID", "user-1", "cipher-1", true).
		Return(&model.Cipher{ID: "cipher-1"})

	req := httptest.NewRequest("GET", "/ciphers/cipher-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	ciphersStore.AssertExpectations(t)
}

func TestFetchEditableCipherNotEditable(t *testing.T) {
	ciphersStore := new(MockCiphersStore)
	router := newCiphersRouter(ciphersStore, flags.Static{})

	ciphersStore.On("FetchCanEditByIDUserID", "user-1", "cipher-1", false).
		Return(nil)

	req := httptest.NewRequest("GET", "/ciphers/cipher-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}
