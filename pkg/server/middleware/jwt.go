package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doodlesbykumbi/vaultorg/pkg/capability"
)

type contextKey string

// IdentityKey is the context key for the authenticated Identity.
const IdentityKey contextKey = "identity"

// Identity is the authenticated caller for a request: the user id plus the
// organization-scoped capability names carried in the token.
type Identity struct {
	UserID string

	// OrgCapabilities maps organization id to the capability names the
	// caller holds there.
	OrgCapabilities map[string][]string
}

// CapabilitySet resolves the caller's capability set for one organization.
// It is resolved once per request and passed down; handlers never query
// individual capabilities again.
func (i *Identity) CapabilitySet(organizationID string) capability.Set {
	names := i.OrgCapabilities[organizationID]
	caps := make([]capability.Capability, 0, len(names))
	for _, n := range names {
		caps = append(caps, capability.Capability(n))
	}
	return capability.NewSet(caps...)
}

// FromContext returns the Identity stored by the middleware, nil if absent.
func FromContext(ctx context.Context) *Identity {
	identity, _ := ctx.Value(IdentityKey).(*Identity)
	return identity
}

// JWTAuthenticator is middleware that validates bearer tokens signed with
// the shared HMAC secret.
type JWTAuthenticator struct {
	secret []byte
}

// NewJWTAuthenticator creates a new JWT authenticator middleware. The
// secret defaults to the VAULTORG_JWT_SECRET environment variable.
func NewJWTAuthenticator(secret []byte) *JWTAuthenticator {
	if len(secret) == 0 {
		secret = []byte(os.Getenv("VAULTORG_JWT_SECRET"))
	}
	return &JWTAuthenticator{secret: secret}
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// stores the caller's Identity in the request context.
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authorization missing"))
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization header"))
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return j.secret, nil
		})
		if err != nil || !token.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Malformed authorization token"))
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Token missing subject"))
			return
		}

		identity := &Identity{
			UserID:          sub,
			OrgCapabilities: parseOrgCapabilities(claims),
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseOrgCapabilities reads the "orgs" claim:
//
//	{"orgs": {"<org id>": ["view-all-collections", ...]}}
func parseOrgCapabilities(claims jwt.MapClaims) map[string][]string {
	result := map[string][]string{}

	orgs, ok := claims["orgs"].(map[string]interface{})
	if !ok {
		return result
	}

	for orgID, raw := range orgs {
		names, ok := raw.([]interface{})
		if !ok {
			continue
		}
		for _, n := range names {
			if name, ok := n.(string); ok {
				result[orgID] = append(result[orgID], name)
			}
		}
	}
	return result
}
