package v1

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/timeaway/backend/internal/models"
)

const tokenLifetime = time.Hour

type tokenClaims struct {
	jwt.RegisteredClaims
	Role models.AccountRole `json:"role"`
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// createToken issues a signed bearer token for the account.
func createToken(account models.Account) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
		Role: account.Role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// parseToken verifies a bearer token and returns its claims.
func parseToken(token string) (tokenClaims, error) {
	var claims tokenClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return jwtSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return tokenClaims{}, errInvalidToken
	}

	return claims, nil
}
