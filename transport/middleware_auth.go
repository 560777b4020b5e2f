package transport

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rizkyfachril/backoffice/application/user"
	"github.com/rizkyfachril/backoffice/constant"
	"github.com/rizkyfachril/backoffice/utils/errors"
)

const sessionCookieName = "session_token"

// accessPolicy decides what happens to an unauthenticated request.
type accessPolicy int

const (
	// policyPublic passes through with no session check.
	policyPublic accessPolicy = iota
	// policyAPI rejects unauthenticated requests with a JSON 401.
	policyAPI
	// policyPage redirects unauthenticated requests to the login page,
	// carrying the original URL as a callback parameter.
	policyPage
)

type routePolicy struct {
	prefix string
	policy accessPolicy
}

// routePolicies is the declarative protection table. First match wins, so
// public carve-outs precede the broader protected prefixes.
var routePolicies = []routePolicy{
	{prefix: "/swagger/", policy: policyPublic},
	{prefix: "/uploads/", policy: policyPublic},
	{prefix: "/internal/", policy: policyPublic}, // API-key gated by InternalMiddleware
	{prefix: "/api/v1/auth/login", policy: policyPublic},
	{prefix: "/api/v1/auth/register", policy: policyPublic},
	{prefix: "/api/", policy: policyAPI},
	{prefix: "/admin", policy: policyPage},
}

const (
	loginPagePath    = "/login"
	callbackURLParam = "callbackUrl"
)

func policyFor(path string) accessPolicy {
	for _, rp := range routePolicies {
		if strings.HasPrefix(path, rp.prefix) {
			return rp.policy
		}
	}
	return policyPublic
}

// AuthMiddleware enforces the route-policy table using JWT sessions validated
// through UserApp. Authenticated requests get the user id embedded in context;
// authenticated visits to the login page bounce back to the root.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			policy := policyFor(path)

			if policy == policyPublic && path != loginPagePath {
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r)

			var userID uint64
			authenticated := false
			if token != "" {
				if id, err := userApp.ValidateToken(r.Context(), token); err == nil {
					userID = id
					authenticated = true
				}
			}

			if path == loginPagePath {
				if authenticated {
					http.Redirect(w, r, "/", http.StatusFound)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !authenticated {
				switch policy {
				case policyPage:
					loginURL := loginPagePath + "?" + callbackURLParam + "=" + url.QueryEscape(r.URL.RequestURI())
					http.Redirect(w, r, loginURL, http.StatusFound)
				default:
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				}
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
