package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mindly/mindly-client/internal/apierr"
	"github.com/mindly/mindly-client/internal/types"
	"github.com/mindly/mindly-client/internal/wire"
)

// ListPatients retrieves the roster sorted by name. One fixed-size page; the
// client never paginates further.
func ListPatients(ctx context.Context, httpClient *http.Client, baseURL string, pageSize int) (*types.PatientPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("page", "0")
	q.Set("size", fmt.Sprintf("%d", pageSize))
	q.Set("sort", "nome,asc")
	u := fmt.Sprintf("%s/pacientes?%s", baseURL, q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("list patients", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body := readBody(resp)
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("list patients", resp.StatusCode, body)
	}
	page := wire.DecodePatientPage(body)
	return &page, nil
}

// GetPatientByEmail fetches a single patient; email is the natural key.
func GetPatientByEmail(ctx context.Context, httpClient *http.Client, baseURL, email string) (*types.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateEmailPresent(email); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/pacientes/email/%s", baseURL, url.PathEscape(email))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("get patient", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("get patient", resp.StatusCode, readBody(resp))
	}
	var p types.Patient
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveFeedback overwrites the patient's clinical observation wholesale.
// Last write wins; there is no revision history in the data model.
func SaveFeedback(ctx context.Context, httpClient *http.Client, baseURL, email, feedback string) (*types.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateEmailPresent(email); err != nil {
		return nil, err
	}
	body, err := json.Marshal(map[string]string{"feedback": feedback})
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/pacientes/email/%s/feedback", baseURL, url.PathEscape(email))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("save feedback", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("save feedback", resp.StatusCode, readBody(resp))
	}
	var p types.Patient
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
