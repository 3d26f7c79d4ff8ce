package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type contextKey string

const (
	ClientIDKey contextKey = "client_id"

	ClientIDCookie = "client_id"
	ClientIDHeader = "X-Client-ID"
)

// ClientMiddleware identifies anonymous visitors so their display preference
// can be stored. No accounts exist; the id is a random uuid kept in a cookie.
type ClientMiddleware struct {
	cookieMaxAge time.Duration
}

func NewClientMiddleware(cookieMaxAge time.Duration) *ClientMiddleware {
	return &ClientMiddleware{cookieMaxAge: cookieMaxAge}
}

func (m *ClientMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientIDFromRequest(r)
		if clientID == "" {
			clientID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientIDCookie,
				Value:    clientID,
				Path:     "/",
				MaxAge:   int(m.cookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ClientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIDFromRequest prefers the header (API clients) over the cookie (browsers).
// Values that are not uuids are ignored.
func clientIDFromRequest(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(ClientIDHeader)); err == nil {
		return id.String()
	}
	if cookie, err := r.Cookie(ClientIDCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}
	return ""
}

// GetClientIDFromContext extracts the client id from context
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(ClientIDKey).(string)
	return clientID, ok && clientID != ""
}
