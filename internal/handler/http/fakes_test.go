// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/go-seltzer-tracker/internal/config"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/service"
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/go-chi/chi/v5"
)

var errUnexpectedCall = errors.New("unexpected call")

// ─────────────────────────────────────────────
// Service fakes. Each method field can be overridden per test case; an
// unset field fails the call.
// ─────────────────────────────────────────────

type fakeAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	logoutFn       func(ctx context.Context, sessionID string) error
	authenticateFn func(ctx context.Context, tokenString string) (models.Session, error)
	profileFn      func(ctx context.Context, userID string) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	if f.registerFn == nil {
		return models.User{}, models.Token{}, errUnexpectedCall
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	if f.loginFn == nil {
		return models.User{}, models.Token{}, errUnexpectedCall
	}
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Logout(ctx context.Context, sessionID string) error {
	if f.logoutFn == nil {
		return errUnexpectedCall
	}
	return f.logoutFn(ctx, sessionID)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (models.Session, error) {
	if f.authenticateFn == nil {
		return models.Session{}, service.ErrTokenIsExpiredOrInvalid
	}
	return f.authenticateFn(ctx, tokenString)
}

func (f *fakeAuthService) Profile(ctx context.Context, userID string) (models.User, error) {
	if f.profileFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return f.profileFn(ctx, userID)
}

type fakeCatalogService struct {
	listBrandsFn   func(ctx context.Context) ([]models.Brand, error)
	createBrandFn  func(ctx context.Context, req models.BrandRequest) (models.Brand, error)
	addFlavorFn    func(ctx context.Context, brandID string, req models.FlavorRequest) error
	removeFlavorFn func(ctx context.Context, brandID string, req models.FlavorRequest) error
	deleteBrandFn  func(ctx context.Context, brandID string) (models.Brand, error)
}

func (f *fakeCatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	if f.listBrandsFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listBrandsFn(ctx)
}

func (f *fakeCatalogService) CreateBrand(ctx context.Context, req models.BrandRequest) (models.Brand, error) {
	if f.createBrandFn == nil {
		return models.Brand{}, errUnexpectedCall
	}
	return f.createBrandFn(ctx, req)
}

func (f *fakeCatalogService) AddFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error {
	if f.addFlavorFn == nil {
		return errUnexpectedCall
	}
	return f.addFlavorFn(ctx, brandID, req)
}

func (f *fakeCatalogService) RemoveFlavor(ctx context.Context, brandID string, req models.FlavorRequest) error {
	if f.removeFlavorFn == nil {
		return errUnexpectedCall
	}
	return f.removeFlavorFn(ctx, brandID, req)
}

func (f *fakeCatalogService) DeleteBrand(ctx context.Context, brandID string) (models.Brand, error) {
	if f.deleteBrandFn == nil {
		return models.Brand{}, errUnexpectedCall
	}
	return f.deleteBrandFn(ctx, brandID)
}

func (f *fakeCatalogService) SeedDefaults(context.Context, []models.Brand) (int, error) {
	return 0, errUnexpectedCall
}

type fakeEntryService struct {
	listFn   func(ctx context.Context, userID string, limit int) ([]models.Entry, error)
	searchFn func(ctx context.Context, userID, text string, filter models.SearchFilter) ([]models.Entry, error)
	getFn    func(ctx context.Context, userID, entryID string) (models.Entry, error)
	createFn func(ctx context.Context, userID string, req models.EntryRequest) (models.Entry, error)
	updateFn func(ctx context.Context, userID, entryID string, req models.EntryRequest) error
	deleteFn func(ctx context.Context, userID, entryID string) error
}

func (f *fakeEntryService) ListEntries(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	if f.listFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listFn(ctx, userID, limit)
}

func (f *fakeEntryService) SearchEntries(ctx context.Context, userID, text string, filter models.SearchFilter) ([]models.Entry, error) {
	if f.searchFn == nil {
		return nil, errUnexpectedCall
	}
	return f.searchFn(ctx, userID, text, filter)
}

func (f *fakeEntryService) GetEntry(ctx context.Context, userID, entryID string) (models.Entry, error) {
	if f.getFn == nil {
		return models.Entry{}, errUnexpectedCall
	}
	return f.getFn(ctx, userID, entryID)
}

func (f *fakeEntryService) CreateEntry(ctx context.Context, userID string, req models.EntryRequest) (models.Entry, error) {
	if f.createFn == nil {
		return models.Entry{}, errUnexpectedCall
	}
	return f.createFn(ctx, userID, req)
}

func (f *fakeEntryService) UpdateEntry(ctx context.Context, userID, entryID string, req models.EntryRequest) error {
	if f.updateFn == nil {
		return errUnexpectedCall
	}
	return f.updateFn(ctx, userID, entryID, req)
}

func (f *fakeEntryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if f.deleteFn == nil {
		return errUnexpectedCall
	}
	return f.deleteFn(ctx, userID, entryID)
}

type fakeStatsService struct {
	statsFn func(ctx context.Context, userID string) (models.Stats, error)
}

func (f *fakeStatsService) Stats(ctx context.Context, userID string) (models.Stats, error) {
	if f.statsFn == nil {
		return models.Stats{}, errUnexpectedCall
	}
	return f.statsFn(ctx, userID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(context.Context) error {
	return f.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testCookieName = "seltzer_session"
	userToken      = "user-token"
	adminToken     = "admin-token"
)

var (
	testUserSession  = models.Session{SessionID: "session-user", UserID: "user-1", Role: models.RoleUser}
	testAdminSession = models.Session{SessionID: "session-admin", UserID: "admin-1", Role: models.RoleAdmin}
)

// authenticateTestTokens accepts userToken and adminToken.
func authenticateTestTokens(_ context.Context, token string) (models.Session, error) {
	switch token {
	case userToken:
		return testUserSession, nil
	case adminToken:
		return testAdminSession, nil
	default:
		return models.Session{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// testServices returns services whose auth fake accepts the test tokens.
func testServices() *service.Services {
	return &service.Services{
		AuthService:    &fakeAuthService{authenticateFn: authenticateTestTokens},
		CatalogService: &fakeCatalogService{},
		EntryService:   &fakeEntryService{},
		StatsService:   &fakeStatsService{},
		AppInfoService: &fakeAppInfoService{version: "test-version"},
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, &fakePinger{}, config.Server{CookieName: testCookieName}, logger.Nop())
}

func newTestRouter(svcs *service.Services) *chi.Mux {
	return newTestHandler(svcs).Init()
}

// serve runs one request through router. A non-empty token is sent as a
// bearer token.
func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
