package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mindly/mindly-client/internal/apierr"
	"github.com/mindly/mindly-client/internal/types"
)

// Suggest proxies a free-text mood-support request to the backend's AI
// endpoint. Unset fields are serialized as JSON null, which is what the
// endpoint expects for missing context.
func Suggest(ctx context.Context, httpClient *http.Client, baseURL string, req types.SuggestionRequest) (*types.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/ia/sugestoes", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("suggest", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("suggest", resp.StatusCode, readBody(resp))
	}
	var s types.Suggestion
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
