package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Sub   string `json:"sub"`   // user id
	Staff bool   `json:"staff"` // may write any book
	jwt.RegisteredClaims
}

// UserID parses the numeric subject of the claims.
func (c *Claims) UserID() (int64, error) {
	return strconv.ParseInt(c.Sub, 10, 64)
}

// GenerateToken signs an HS256 access token carrying the user id and
// staff flag. The returned jti identifies this token instance.
func GenerateToken(secret string, userID int64, staff bool, ttl time.Duration) (string, string, error) {
	jti := uuid.New().String()
	c := Claims{
		Sub:   strconv.FormatInt(userID, 10),
		Staff: staff,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}
	return signed, jti, nil
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := t.Claims.(*Claims); ok && t.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
