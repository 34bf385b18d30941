package hrsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/facilops/facil-backend-go/internal/config"
	"golang.org/x/oauth2/clientcredentials"
)

// EmployeeRecord is the normalized employee shape both platforms reduce to.
type EmployeeRecord struct {
	ExternalRef string
	FullName    string
	Active      bool
}

// APIError represents an error response from either HR platform.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error [%d]: %s", e.Provider, e.StatusCode, e.Message)
}

// PayrollClient talks to the payroll/HR platform. Authentication uses the
// OAuth2 client-credentials flow; the token source refreshes transparently.
type PayrollClient struct {
	baseURL string
	httpc   *http.Client
}

func NewPayrollClient(cfg config.PayrollConfig) *PayrollClient {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	httpc := cc.Client(context.Background())
	httpc.Timeout = 30 * time.Second

	return &PayrollClient{
		baseURL: cfg.BaseURL,
		httpc:   httpc,
	}
}

type payrollEmployee struct {
	ID     string `json:"id"`
	Name   string `json:"full_name"`
	Status string `json:"status"` // "active", "terminated", ...
}

// ListEmployees fetches the full employee roster from the payroll platform.
func (c *PayrollClient) ListEmployees(ctx context.Context) ([]EmployeeRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/employees", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payroll request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Provider: "payroll", StatusCode: resp.StatusCode, Message: resp.Status}
	}

	var payload struct {
		Data []payrollEmployee `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode payroll response: %w", err)
	}

	records := make([]EmployeeRecord, 0, len(payload.Data))
	for _, e := range payload.Data {
		records = append(records, EmployeeRecord{
			ExternalRef: e.ID,
			FullName:    e.Name,
			Active:      e.Status == "active",
		})
	}
	return records, nil
}

// TimeclockClient talks to the time-tracking platform, which authenticates
// with a static API key header.
type TimeclockClient struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewTimeclockClient(cfg config.TimeclockConfig) *TimeclockClient {
	return &TimeclockClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type timeclockWorker struct {
	WorkerID string `json:"worker_id"`
	Name     string `json:"name"`
	Enabled  bool   `json:"enabled"`
}

// ListWorkers fetches the worker roster from the time-tracking platform.
func (c *TimeclockClient) ListWorkers(ctx context.Context) ([]EmployeeRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/workers", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timeclock request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Provider: "timeclock", StatusCode: resp.StatusCode, Message: resp.Status}
	}

	var payload struct {
		Workers []timeclockWorker `json:"workers"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode timeclock response: %w", err)
	}

	records := make([]EmployeeRecord, 0, len(payload.Workers))
	for _, w := range payload.Workers {
		records = append(records, EmployeeRecord{
			ExternalRef: w.WorkerID,
			FullName:    w.Name,
			Active:      w.Enabled,
		})
	}
	return records, nil
}
