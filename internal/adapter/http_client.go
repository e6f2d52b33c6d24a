package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cred-vault/internal/utils"
	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
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

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.tokenFromResponse(resp, "register")
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.tokenFromResponse(resp, "login")
}

func (h *httpServerAdapter) SaveRecord(ctx context.Context, record models.CredentialRecord) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/api/vault")
	if err != nil {
		return fmt.Errorf("save record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetRecords(ctx context.Context) ([]models.CredentialRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vault")
	if err != nil {
		return nil, fmt.Errorf("get records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.CredentialRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode records response: %w", err)
	}

	return records, nil
}

func (h *httpServerAdapter) UpdateRecord(ctx context.Context, id string, update models.CredentialUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/vault/" + id)
	if err != nil {
		return fmt.Errorf("update record request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteRecord(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/vault/" + id)
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// tokenFromResponse extracts the bearer token from the Authorization response
// header, stores it for subsequent requests, and returns the token model with
// the user id read from the unverified "sub" claim. The client never has the
// sign key; verification is the server's job.
func (h *httpServerAdapter) tokenFromResponse(resp *resty.Response, op string) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse user id: %w", op, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
