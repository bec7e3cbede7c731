package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gophertalk/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnexpectedTokenType is returned by ValidateAndParseJWTToken when the
// "type" claim of an otherwise valid token differs from the expected one.
var ErrUnexpectedTokenType = errors.New("unexpected token type")

// GenerateJWTToken signs an HS256 token for userID. The subject carries the
// user id in decimal and the "type" claim tells access and refresh tokens
// apart so one cannot be used in place of the other.
func GenerateJWTToken(issuer string, userID int64, tokenType models.TokenType, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || tokenType == "" {
		return models.Token{}, errors.New("jwt: issuer, type, duration and key are required")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Type: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Type: tokenType}, nil
}

// ValidateAndParseJWTToken checks signature, issuer, expiry and token type
// and returns the token with its user id resolved from the subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, expectedType models.TokenType) (models.Token, error) {
	claims := &models.TokenClaims{}
	parser := jwt.NewParser(
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("invalid %s token: %w", expectedType, err)
	}

	if claims.Type != expectedType {
		return models.Token{}, fmt.Errorf("%w: got %q, want %q", ErrUnexpectedTokenType, claims.Type, expectedType)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Type: claims.Type}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// ParseUserIDFromJWT reads the subject of a token without verifying it.
// The terminal client uses it to know which posts belong to the logged-in user.
func ParseUserIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
