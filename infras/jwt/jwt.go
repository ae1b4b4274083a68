package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"playcourt/config"
	"playcourt/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	bearerPrefix    = "Bearer "
	defaultValidity = 2 * time.Hour
)

// Claims is the signed identity carried by a bearer token.
type Claims struct {
	Email   string `json:"email"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// Token is the result of issuing a bearer token.
type Token struct {
	Token     string
	ExpiresAt time.Time
}

// JWT issues and verifies bearer tokens.
type JWT interface {
	Issue(email string) (*Token, error)
	Verify(tokenString string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	secret   []byte
	issuer   string
	validity time.Duration
}

// New creates a new JWT service. It refuses to build without a signing secret.
func New(cfg *config.Config) (JWT, error) {
	if cfg.JWT.AccessSecret == "" {
		return nil, &config.ConfigurationError{Setting: "JWT_ACCESS_SECRET"}
	}

	validity := time.Duration(cfg.JWT.AccessExpireMin) * time.Minute
	if validity == 0 {
		validity = defaultValidity
	}

	return &Service{
		secret:   []byte(cfg.JWT.AccessSecret),
		issuer:   cfg.App.Name,
		validity: validity,
	}, nil
}

// Issue signs a token for the given email.
func (s *Service) Issue(email string) (*Token, error) {
	now := timezone.Now()
	expiresAt := now.Add(s.validity)
	tokenID := uuid.New().String()

	claims := Claims{
		Email:   email,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   email,
			ID:        tokenID,
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		Token:     signedToken,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify parses tokenString and checks its signature, expiry and identity claim.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Email == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization header.
// An absent header, another scheme or a blank token all count as no token.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrMissingToken
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
