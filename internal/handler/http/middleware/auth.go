package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

// accessTokenCookie is checked when no Authorization header is sent.
const accessTokenCookie = "accessToken"

// TokenVerifier validates an access token.
type TokenVerifier interface {
	ParseAccessToken(token string) (*entity.Claims, error)
}

// AuthMiddleWare rejects requests without a valid access token and stores the
// caller's id under UserIDKey.
func AuthMiddleWare(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization token required"})
			return
		}
		claims, err := verifier.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth stores the caller's id when a valid token is sent and lets
// anonymous or badly authenticated requests through unchanged.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := verifier.ParseAccessToken(token); err == nil {
				c.Set(UserIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return cookie
	}
	return ""
}
