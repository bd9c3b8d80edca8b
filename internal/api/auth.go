package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mindly/mindly-client/internal/apierr"
	"github.com/mindly/mindly-client/internal/types"
)

// Register creates a patient account. The call is unauthenticated; the token
// transport skips requests made before a session exists.
func Register(ctx context.Context, httpClient *http.Client, baseURL string, req types.RegisterRequest) (*types.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("nome, email e senha são obrigatórios")
	}
	return postAuth(ctx, httpClient, baseURL+"/auth/register", "register", req)
}

// Login exchanges credentials for the bearer token and the user's role.
func Login(ctx context.Context, httpClient *http.Client, baseURL string, req types.LoginRequest) (*types.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("email e senha são obrigatórios")
	}
	return postAuth(ctx, httpClient, baseURL+"/auth/login", "login", req)
}

func postAuth(ctx context.Context, httpClient *http.Client, u, operation string, payload any) (*types.AuthResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport(operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apierr.FromStatus(operation, resp.StatusCode, readBody(resp))
	}
	var res types.AuthResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
