package usecases

import (
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase trades the shared access password for a signed session token.
// Replaces the ambient logged-in flag the old front end kept in session
// state: every protected operation now carries the token explicitly.
type AuthUsecase interface {
	Login(password string) (string, error)
}

type authUsecase struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewAuthUsecase(passwordHash, jwtSecret string, tokenTTL time.Duration) AuthUsecase {
	return &authUsecase{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
	}
}

func (u *authUsecase) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return "", &UseCaseError{Code: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(nowFunc().Add(u.tokenTTL)),
		IssuedAt:  jwt.NewNumericDate(nowFunc()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(u.jwtSecret)
	if err != nil {
		return "", &UseCaseError{Code: http.StatusInternalServerError, Message: "token generation failed"}
	}
	return signed, nil
}
