package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/gophertalk/internal/config"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/models"
)

// authService is the concrete implementation of AuthService.
// It registers and authenticates users through a UserRepository and issues
// access/refresh JWT pairs signed with separate secrets.
type authService struct {
	userRepository store.UserRepository

	accessTokenSecret    string
	refreshTokenSecret   string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	tokenIssuer          string

	// passwordHashCost is the bcrypt cost used at registration and on
	// password change.
	passwordHashCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		accessTokenSecret:    cfg.AccessTokenSecret,
		refreshTokenSecret:   cfg.RefreshTokenSecret,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		tokenIssuer:          cfg.TokenIssuer,
		passwordHashCost:     cfg.PasswordHashCost,
		logger:               logger,
	}
}

// Register hashes the password, stores the user and returns a fresh token
// pair. A taken user name surfaces as store.ErrUserAlreadyExists.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.NewUser{
		UserName:     req.UserName,
		FirstName:    deref(req.FirstName),
		LastName:     deref(req.LastName),
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user creation ended with error")
		return models.TokenPair{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issueTokens(user.ID)
}

// Login checks the credentials. An unknown user and a wrong password both
// return ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUserName(ctx, req.UserName)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("user_name", req.UserName).Msg("login of unknown user")
		return models.TokenPair{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user search by user name failed")
		return models.TokenPair{}, fmt.Errorf("user search by user name failed: %w", err)
	}

	if err = utils.CheckPassword(user.PasswordHash, req.Password); err != nil {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.TokenPair{}, ErrWrongPassword
	}

	return a.issueTokens(user.ID)
}

// Refresh verifies a refresh token and issues a new pair for the same user,
// provided the user still exists.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.refreshTokenSecret, a.tokenIssuer, models.RefreshToken)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	if _, err = a.userRepository.GetUserByID(ctx, token.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
		}
		return models.TokenPair{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return a.issueTokens(token.UserID)
}

// ParseAccessToken normalises every validation failure (expired, wrong
// issuer, wrong type, malformed) to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.accessTokenSecret, a.tokenIssuer, models.AccessToken)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) issueTokens(userID int64) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(a.tokenIssuer, userID, models.AccessToken, a.accessTokenDuration, a.accessTokenSecret)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, userID, models.RefreshToken, a.refreshTokenDuration, a.refreshTokenSecret)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access.String(), RefreshToken: refresh.String()}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
