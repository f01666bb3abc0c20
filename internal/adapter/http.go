// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-seltzer-tracker/internal/config"
	"github.com/MKhiriev/go-seltzer-tracker/internal/logger"
	"github.com/MKhiriev/go-seltzer-tracker/internal/utils"
	"github.com/MKhiriev/go-seltzer-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client     *utils.HTTPClient
	cookieName string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme
// defaults to http.
//
// Redirects are not followed: the server answers logout with a redirect to
// its home page, which is not part of the API.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	return &httpServerAdapter{
		client:     client,
		cookieName: adapterCfg.CookieName,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.storeSessionCookie(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return h.storeSessionCookie(resp)
}

// storeSessionCookie keeps the session token the server set as a cookie.
func (h *httpServerAdapter) storeSessionCookie(resp *resty.Response) error {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == h.cookieName && cookie.Value != "" {
			h.SetToken(cookie.Value)
			return nil
		}
	}
	return ErrNoSessionCookie
}

// Logout ends the server session and forgets the token. The server answers
// with a redirect, which counts as success.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if resp.StatusCode() != http.StatusFound {
		if err = mapHTTPError(resp); err != nil {
			return err
		}
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/me")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&brands).
		Get("/api/brands")
	if err != nil {
		return nil, fmt.Errorf("list brands request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return brands, nil
}

func (h *httpServerAdapter) CreateBrand(ctx context.Context, req models.BrandRequest) (models.Brand, error) {
	var created models.BrandResponse

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&created).
		Post("/api/brands")
	if err != nil {
		return models.Brand{}, fmt.Errorf("create brand request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Brand{}, err
	}

	return created.Brand, nil
}

func (h *httpServerAdapter) DeleteBrand(ctx context.Context, brandID string) (string, error) {
	var result models.Response

	resp, err := h.authedRequest(ctx).
		SetPathParam("brandID", brandID).
		SetResult(&result).
		Delete("/api/brands/{brandID}")
	if err != nil {
		return "", fmt.Errorf("delete brand request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}

func (h *httpServerAdapter) AddFlavor(ctx context.Context, brandID, flavor string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("brandID", brandID).
		SetBody(models.FlavorRequest{FlavorName: flavor}).
		Post("/api/brands/{brandID}/flavors")
	if err != nil {
		return fmt.Errorf("add flavor request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) RemoveFlavor(ctx context.Context, brandID, flavor string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("brandID", brandID).
		SetBody(models.FlavorRequest{FlavorName: flavor}).
		Delete("/api/brands/{brandID}/flavors")
	if err != nil {
		return fmt.Errorf("remove flavor request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListEntries returns the caller's entries, newest first. A non-positive
// limit lists everything.
func (h *httpServerAdapter) ListEntries(ctx context.Context, limit int) ([]models.Entry, error) {
	var entries []models.Entry

	req := h.authedRequest(ctx).SetResult(&entries)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/seltzers")
	if err != nil {
		return nil, fmt.Errorf("list seltzers request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) GetEntry(ctx context.Context, entryID string) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.authedRequest(ctx).
		SetPathParam("seltzerID", entryID).
		SetResult(&entry).
		Get("/api/seltzers/{seltzerID}")
	if err != nil {
		return models.Entry{}, fmt.Errorf("get seltzer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, req models.EntryRequest) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&entry).
		Post("/api/seltzers")
	if err != nil {
		return models.Entry{}, fmt.Errorf("create seltzer request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, entryID string, req models.EntryRequest) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("seltzerID", entryID).
		SetBody(req).
		Put("/api/seltzers/{seltzerID}")
	if err != nil {
		return fmt.Errorf("update seltzer request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, entryID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("seltzerID", entryID).
		Delete("/api/seltzers/{seltzerID}")
	if err != nil {
		return fmt.Errorf("delete seltzer request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Search(ctx context.Context, query string, filter models.SearchFilter) ([]models.Entry, error) {
	var entries []models.Entry

	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"q":      query,
			"filter": string(filter),
		}).
		SetResult(&entries).
		Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h *httpServerAdapter) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/stats")
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// Health returns the server's health report. An unhealthy server yields
// both the report and an error wrapping [ErrServiceUnavailable].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		SetError(&health).
		Get("/healthz")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	return health, mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
