package auth

import (
	"net/http"
	"strings"
)

const TokenQueryParam = "token"

// BearerToken extracts the credential of a request, either from the
// Authorization header or from the token query parameter used by
// browsers that cannot set headers on a WebSocket upgrade.
func BearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if found {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(r.URL.Query().Get(TokenQueryParam))
}
