package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"expo-gateway/internal/handler/httperr"
	"expo-gateway/internal/pkg/cookie"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware authenticates the manage flow: the login handler puts a
// signed session token into an HttpOnly cookie, and every session route
// resolves it back to the edit-session id here.
type SessionMiddleware struct {
	jwtService *jwt.Service
}

const ctxSessionIDKey = "session_id"

func NewSessionMiddleware(jwtService *jwt.Service) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
	}
}

func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		token = cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing session token"), "Niste prijavljeni.", "")
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Session token validation failed", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Sesija je istekla ili je nevažeća.", "")
			return
		}

		c.Set(ctxSessionIDKey, claims.SessionID)
		c.Set("jwt_claims", map[string]any{
			"session_id": claims.SessionID.String(),
			"email":      claims.Email,
		})
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	sessionID, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := sessionID.(uuid.UUID)
	return id, ok
}
