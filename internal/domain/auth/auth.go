package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the JWT payload. The user id travels in the registered subject.
type Claims struct {
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	EmployeeID string   `json:"employeeId,omitempty"`
	jwt.RegisteredClaims
}

func (c Claims) Payload() AuthPayload {
	return AuthPayload{
		UserID:     c.Subject,
		Email:      c.Email,
		Role:       c.Role,
		EmployeeID: c.EmployeeID,
	}
}

func ClaimsFor(payload AuthPayload) Claims {
	return Claims{
		Email:            payload.Email,
		Role:             payload.Role,
		EmployeeID:       payload.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{Subject: payload.UserID},
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func GenerateToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
