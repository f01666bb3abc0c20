// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/config"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/store"
	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// lifecycle. Every session is a row in the session repository whose id is
// embedded in a signed JWT; deleting the row revokes the token.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository persists login sessions.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a session and its JWT remain valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// isAdmin decides the role of newly registered users.
	isAdmin func(username string) bool

	ids IDGenerator
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		passwordHashCost:  cfg.PasswordHashCost,
		isAdmin:           cfg.IsAdmin,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// Register creates a new account and logs it in.
//
// Returns:
//   - ErrUserAlreadyExists if the username or the e-mail is taken.
//   - a wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.UserExists(ctx, req.Username, req.Email)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user existence check failed")
		return models.User{}, models.Token{}, fmt.Errorf("user existence check failed: %w", err)
	}
	if exists {
		return models.User{}, models.Token{}, ErrUserAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	role := models.RoleUser
	if a.isAdmin != nil && a.isAdmin(req.Username) {
		role = models.RoleAdmin
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.ids.Generate(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    a.timestamp(),
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, models.Token{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.startSession(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("user_id", user.UserID).Str("role", string(user.Role)).Msg("user registered")
	return user, token, nil
}

// Login verifies credentials and starts a new session.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials,
// and both paths run one bcrypt comparison.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.BurnPasswordCompare(req.Password, a.passwordHashCost)
			return models.User{}, models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.ComparePassword(user.PasswordHash, req.Password); err != nil {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	// best-effort pruning of expired sessions
	if pruned, err := a.sessionRepository.DeleteExpiredSessions(ctx, user.UserID, a.now().UTC()); err != nil {
		log.Warn().Err(err).Str("user_id", user.UserID).Msg("pruning expired sessions failed")
	} else if pruned > 0 {
		log.Debug().Int64("pruned", pruned).Str("user_id", user.UserID).Msg("expired sessions pruned")
	}

	token, err := a.startSession(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// Logout deletes the session. Unknown sessions are ignored.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if err := a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// Authenticate validates the token signature, issuer and expiry, then checks
// that the session it names still exists and belongs to the token subject.
// Every failure of the token itself is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.FindSession(ctx, token.SessionID, a.now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrTokenIsExpiredOrInvalid
		}
		logger.FromContext(ctx).Err(err).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.UserID != token.UserID {
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}

// Profile returns the account of an authenticated user.
func (a *authService) Profile(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// startSession persists a session for user and issues its token.
func (a *authService) startSession(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	now := a.timestamp()
	session := models.Session{
		SessionID: a.ids.Generate(),
		UserID:    user.UserID,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(a.tokenDuration),
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, session.UserID, session.SessionID, now, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("session creation failed")
		return models.Token{}, fmt.Errorf("session creation failed: %w", err)
	}

	return token, nil
}

// timestamp is the current time in UTC at the precision both SQL dialects
// store.
func (a *authService) timestamp() time.Time {
	return a.now().UTC().Truncate(time.Microsecond)
}
