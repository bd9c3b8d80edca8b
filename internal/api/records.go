package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mindly/mindly-client/internal/apierr"
	"github.com/mindly/mindly-client/internal/types"
	"github.com/mindly/mindly-client/internal/wire"
)

// CreateRecord posts a new daily record and returns the mapped record with
// its server-assigned id.
func CreateRecord(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateRecordRequest) (*types.DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateEmailPresent(req.PatientEmail); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("data do registro é obrigatória")
	}
	if strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.Mood) == "" {
		return nil, fmt.Errorf("descrição e mood do dia são obrigatórios")
	}
	if err := types.ValidateLevel(req.StressLevel, "nível de estresse"); err != nil {
		return nil, err
	}
	if err := types.ValidateLevel(req.SleepQuality, "qualidade do sono"); err != nil {
		return nil, err
	}

	body, err := json.Marshal(wire.FromCreateRequest(req))
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/registros", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("create record", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("create record", resp.StatusCode, readBody(resp))
	}

	var w wire.Record
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, err
	}
	rec := wire.ToRecord(w)
	return &rec, nil
}

// ListRecords retrieves a patient's records, newest first as ordered by the
// server. Both the pagination envelope and the legacy flat array are
// accepted; unknown shapes degrade to an empty page.
func ListRecords(ctx context.Context, httpClient *http.Client, baseURL, email string, pageSize int) (*types.RecordPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateEmailPresent(email); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("page", "0")
	q.Set("size", fmt.Sprintf("%d", pageSize))
	q.Set("sort", "dataRegistro,desc")
	u := fmt.Sprintf("%s/registros/paciente/%s?%s", baseURL, url.PathEscape(email), q.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("list records", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body := readBody(resp)
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("list records", resp.StatusCode, body)
	}
	page := wire.DecodeRecordPage(body)
	return &page, nil
}

// UpdateRecord sends a partial update; only the fields the patch carries are
// serialized.
func UpdateRecord(ctx context.Context, httpClient *http.Client, baseURL string, id int64, patch types.RecordPatch) (*types.DailyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if patch.StressLevel != nil {
		if err := types.ValidateLevel(*patch.StressLevel, "nível de estresse"); err != nil {
			return nil, err
		}
	}
	if patch.SleepQuality != nil {
		if err := types.ValidateLevel(*patch.SleepQuality, "qualidade do sono"); err != nil {
			return nil, err
		}
	}
	body, err := json.Marshal(wire.FromPatch(patch))
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/registros/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("update record", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, types.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("update record", resp.StatusCode, readBody(resp))
	}
	var w wire.Record
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return nil, err
	}
	rec := wire.ToRecord(w)
	return &rec, nil
}

// DeleteRecord removes a record permanently. Callers must only drop the row
// from their local state after this returns nil.
func DeleteRecord(ctx context.Context, httpClient *http.Client, baseURL string, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := fmt.Sprintf("%s/registros/%d", baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return apierr.FromTransport("delete record", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		return types.ErrNotFound
	default:
		return apierr.FromStatus("delete record", resp.StatusCode, readBody(resp))
	}
}

// ListAlerts returns all current alert signals across patients. Psychologist
// scope; the alert rule itself lives server-side.
func ListAlerts(ctx context.Context, httpClient *http.Client, baseURL string) ([]types.AlertSignal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/registros/alertas", baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, apierr.FromTransport("list alerts", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apierr.FromStatus("list alerts", resp.StatusCode, readBody(resp))
	}
	var alerts []types.AlertSignal
	if err := json.NewDecoder(resp.Body).Decode(&alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
