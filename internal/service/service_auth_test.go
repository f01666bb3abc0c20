// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-seltzer-tracker/internal/config"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/mock"
	"github.com/MKhiriev/go-seltzer-tracker/internal/store"
	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "seltzer-test"
)

// sequenceIDs hands out "<prefix>-1", "<prefix>-2", ...
type sequenceIDs struct {
	prefix string
	n      int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthService(users, sessions, config.App{
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
		AdminUsernames:   []string{"root"},
	}, logger.Nop()).(*authService)
	svc.ids = &sequenceIDs{prefix: "id"}

	return svc, users, sessions
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions := newTestAuthService(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"}

	gomock.InOrder(
		users.EXPECT().UserExists(ctx, "alice", "alice@example.com").Return(false, nil),
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "id-1", u.UserID)
				assert.Equal(t, models.RoleUser, u.Role)
				assert.NotEqual(t, "pw", u.PasswordHash)
				assert.NoError(t, utils.ComparePassword(u.PasswordHash, "pw"))
				assert.False(t, u.CreatedAt.IsZero())
				return u, nil
			},
		),
		sessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, "id-2", s.SessionID)
				assert.Equal(t, "id-1", s.UserID)
				assert.Equal(t, time.Hour, s.ExpiresAt.Sub(s.CreatedAt))
				return nil
			},
		),
	)

	user, token, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "id-1", parsed.UserID)
	assert.Equal(t, "id-2", parsed.SessionID)
}

func TestAuthService_Register_AdminRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions := newTestAuthService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().UserExists(ctx, "root", "root@example.com").Return(false, nil)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) { return u, nil },
	)
	sessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)

	user, _, err := svc.Register(ctx, models.RegisterRequest{Username: "root", Email: "root@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.True(t, user.Role.Can(models.CapabilityManageCatalog))
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	req := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"}

	t.Run("existence check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthService(t, ctrl)

		users.EXPECT().UserExists(gomock.Any(), "alice", "alice@example.com").Return(true, nil)

		_, _, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("unique violation on insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthService(t, ctrl)

		users.EXPECT().UserExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("%w: duplicate", store.ErrUserAlreadyExists))

		_, _, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestAuthService_Register_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(t, ctrl)
	dbErr := errors.New("connection refused")

	users.EXPECT().UserExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, dbErr)

	_, _, err := svc.Register(context.Background(), models.RegisterRequest{Username: "a", Email: "b", Password: "c"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{UserID: "user-1", Username: "alice", Email: "alice@example.com", PasswordHash: hash, Role: models.RoleUser}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions := newTestAuthService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "alice").Return(storedUser(t, "pw"), nil)
	sessions.EXPECT().DeleteExpiredSessions(ctx, "user-1", gomock.Any()).Return(int64(2), nil)
	sessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil)

	user, token, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthService(t, ctrl)

		users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").
			Return(models.User{}, store.ErrUserNotFound)

		_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "pw"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthService(t, ctrl)

		users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedUser(t, "pw"), nil)

		_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Login_PruneFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions := newTestAuthService(t, ctrl)

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedUser(t, "pw"), nil)
	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), "user-1", gomock.Any()).Return(int64(0), errors.New("locked"))
	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})
	assert.NoError(t, err)
}

func TestAuthService_Login_SessionCreationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, sessions := newTestAuthService(t, ctrl)
	dbErr := errors.New("disk full")

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedUser(t, "pw"), nil)
	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(dbErr)

	_, _, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, dbErr)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	token, err := utils.GenerateJWTToken(testIssuer, "user-1", "session-1", time.Now(), time.Hour, testSignKey)
	require.NoError(t, err)

	foreign, err := utils.GenerateJWTToken("someone-else", "user-1", "session-1", time.Now(), time.Hour, testSignKey)
	require.NoError(t, err)

	expired, err := utils.GenerateJWTToken(testIssuer, "user-1", "session-1", time.Now().Add(-2*time.Hour), time.Hour, testSignKey)
	require.NoError(t, err)

	live := models.Session{SessionID: "session-1", UserID: "user-1", Role: models.RoleUser}

	tests := []struct {
		name        string
		token       string
		setup       func(sessions *mock.MockSessionRepository)
		wantSession models.Session
		wantErr     error
	}{
		{
			name:  "live session",
			token: token.SignedString,
			setup: func(sessions *mock.MockSessionRepository) {
				sessions.EXPECT().FindSession(gomock.Any(), "session-1", gomock.Any()).Return(live, nil)
			},
			wantSession: live,
		},
		{
			name:  "session logged out",
			token: token.SignedString,
			setup: func(sessions *mock.MockSessionRepository) {
				sessions.EXPECT().FindSession(gomock.Any(), "session-1", gomock.Any()).
					Return(models.Session{}, store.ErrSessionNotFound)
			},
			wantErr: ErrTokenIsExpiredOrInvalid,
		},
		{
			name:  "session owned by another user",
			token: token.SignedString,
			setup: func(sessions *mock.MockSessionRepository) {
				sessions.EXPECT().FindSession(gomock.Any(), "session-1", gomock.Any()).
					Return(models.Session{SessionID: "session-1", UserID: "user-2"}, nil)
			},
			wantErr: ErrTokenIsExpiredOrInvalid,
		},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "wrong issuer", token: foreign.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "expired", token: expired.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, sessions := newTestAuthService(t, ctrl)
			if tt.setup != nil {
				tt.setup(sessions)
			}

			session, err := svc.Authenticate(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSession, session)
		})
	}
}

// ── Logout / Profile ─────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, sessions := newTestAuthService(t, ctrl)
	dbErr := errors.New("boom")

	sessions.EXPECT().DeleteSession(gomock.Any(), "session-1").Return(nil)
	sessions.EXPECT().DeleteSession(gomock.Any(), "session-2").Return(dbErr)

	assert.NoError(t, svc.Logout(context.Background(), "session-1"))
	assert.ErrorIs(t, svc.Logout(context.Background(), "session-2"), dbErr)
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthService(t, ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(models.User{UserID: "user-1", Username: "alice"}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), "gone").Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.Profile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Profile(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
