package httpapi

import (
	"net/http"

	"github.com/daynu/herejpg/internal/common"
	"github.com/daynu/herejpg/internal/server/auth"
)

// sessionIdentity extracts the session cookie and verifies the token fresh
// on every request. Absent or invalid credentials terminate the request
// with 401 and return ok=false. Mutation handlers validate the payload
// shape before calling this, so a request that is both malformed and
// unauthenticated answers 400.
func (s *HTTPServer) sessionIdentity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil || cookie.Value == "" {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	identity, err := auth.GetIdentityFromToken(cookie.Value, s.jwtSecret)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	return identity, true
}
