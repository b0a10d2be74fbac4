package store

import (
	"github.com/doodlesbykumbi/vaultorg/pkg/access"
	"github.com/doodlesbykumbi/vaultorg/pkg/model"
)

// CiphersStore abstracts cipher access lookups
type CiphersStore interface {
	// FetchCanEditByIDUserID returns the cipher if and only if the user
	// may edit it under the selected model, nil otherwise. This is the
	// single-query fast path used by edit-gated reads.
	FetchCanEditByIDUserID(userID, cipherID string, flexible bool) *model.Cipher

	// FetchCipherContext gathers the rows the predicate engine needs to
	// resolve one (user, cipher) pair. Missing rows come back as nil
	// fields, which the engine treats as no access.
	FetchCipherContext(userID, cipherID string) access.CipherContext
}
