package apitest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Demo credential, matching the reference backend: admin / admin123.
const (
	secretKey     = "coffee-shop-secret-key"
	AdminUsername = "admin"
	AdminPassword = "admin123"
)

var adminPasswordHash = func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return hash
}()

func checkPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(adminPasswordHash, []byte(password)) == nil
}

func issueToken(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func verifyToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		},
	)
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	claims := token.Claims.(*jwt.RegisteredClaims)
	return claims.Subject, nil
}

// requireAdmin rejects requests without a valid bearer token, with the same
// detail strings the reference backend uses.
func requireAdmin(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}
	if _, err := verifyToken(strings.TrimPrefix(header, "Bearer ")); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}
	c.Next()
}
