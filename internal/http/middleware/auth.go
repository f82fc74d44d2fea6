package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	phoneKey      = "session_phone"
	adminEmailKey = "admin_email"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func parseHMAC(tokenString string, secret []byte) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// RequireUser admits requests carrying a valid passenger session token and
// stores the phone claim for handlers.
func RequireUser(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseHMAC(bearerToken(c), secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing session token"})
			return
		}
		phone, _ := claims["phone"].(string)
		if phone == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing session token"})
			return
		}
		c.Set(phoneKey, phone)
		c.Next()
	}
}

// RequireAdmin admits requests carrying a console token with the admin role.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseHMAC(bearerToken(c), secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing console token"})
			return
		}
		role, _ := claims["role"].(string)
		email, _ := claims["email"].(string)
		if role != "admin" || email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Set(adminEmailKey, email)
		c.Next()
	}
}

// SessionPhone returns the phone bound to the request, if authenticated.
func SessionPhone(c *gin.Context) string {
	return c.GetString(phoneKey)
}

// AdminEmail returns the console identity bound to the request.
func AdminEmail(c *gin.Context) string {
	return c.GetString(adminEmailKey)
}
