package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"medtracker/internal/app/client/config"
	"medtracker/internal/domain/meditation"
	"medtracker/internal/domain/user"
)

// CreateRecordRequest is the payload of POST /records, the sole endpoint the
// sync engine depends on. The server identifies the user from the bearer
// token, so no user id travels in the body.
type CreateRecordRequest struct {
	MeditationID string `json:"meditationId"`
	Value        int    `json:"value"`
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "medtracker-client/1.0",
	}
}

// SetToken sets the access token sent as the Authorization bearer header.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return resp, nil
}

// parseResponse decodes the {"data": ...} envelope the server wraps every
// successful response in. A nil result discards the body.
func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
			if errResp.Message != "" {
				return fmt.Errorf("server error: %s", errResp.Message)
			}
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}

// Login exchanges credentials for a token pair.
func (h *httpClient) Login(ctx context.Context, creds user.Credentials) (user.Tokens, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return user.Tokens{}, err
	}

	var out struct {
		Data user.Tokens `json:"data"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return user.Tokens{}, err
	}

	h.SetToken(out.Data.AccessToken)
	return out.Data, nil
}

// Refresh exchanges a refresh token for a fresh token pair.
func (h *httpClient) Refresh(ctx context.Context, refreshToken string) (user.Tokens, error) {
	req := struct {
		RefreshToken string `json:"refreshToken"`
	}{RefreshToken: refreshToken}

	resp, err := h.doRequest(ctx, http.MethodPost, "/auth/refresh", req)
	if err != nil {
		return user.Tokens{}, err
	}

	var out struct {
		Data user.Tokens `json:"data"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return user.Tokens{}, err
	}

	h.SetToken(out.Data.AccessToken)
	return out.Data, nil
}

// Logout invalidates the current session server-side.
func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/auth/logout", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// Profile returns the authenticated user.
func (h *httpClient) Profile(ctx context.Context) (user.User, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return user.User{}, err
	}

	var out struct {
		Data user.User `json:"data"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return user.User{}, err
	}
	return out.Data, nil
}

// Meditations fetches the practice catalog.
func (h *httpClient) Meditations(ctx context.Context) ([]meditation.Meditation, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/meditations", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []meditation.Meditation `json:"data"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateRecord pushes one logged record to the server and returns the id the
// server assigned to it.
func (h *httpClient) CreateRecord(ctx context.Context, req CreateRecordRequest) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/records", req)
	if err != nil {
		return "", err
	}

	var out struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := h.parseResponse(resp, &out); err != nil {
		return "", err
	}
	return out.Data.ID, nil
}
