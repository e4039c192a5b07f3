package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"leadmatch/internal/config"
	"leadmatch/internal/models"
)

// ErrUpstreamShape reports a response body without the nested lead list.
// It is distinct from transport failures so the two show up differently in
// diagnostics.
var ErrUpstreamShape = errors.New("leads API response missing lead list")

type LeadsClient struct {
	baseURL   string
	apiKey    string
	programID string
	client    *http.Client
	logger    *logrus.Logger
}

func NewLeadsClient(cfg *config.Config, logger *logrus.Logger) *LeadsClient {
	return &LeadsClient{
		baseURL:   cfg.LeadsAPIURL,
		apiKey:    cfg.APIKey,
		programID: cfg.ProgramID,
		client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// FetchLeads issues the single filtered query against the leads API. There
// is no pagination and no retry; failures surface to the caller as-is.
func (c *LeadsClient) FetchLeads(ctx context.Context, filter models.QueryFilter) ([]models.Lead, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create leads request: %w", err)
	}

	q := req.URL.Query()
	q.Set("api_key", c.apiKey)
	q.Set("program_id", c.programID)
	q.Set("status", filter.Status)
	q.Set("date_type", filter.DateType)
	q.Set("date_from", filter.DateFrom)
	q.Set("date_to", filter.DateTo)
	if filter.AdvertisingMaterialID != "" {
		q.Set("advertising_material_id", filter.AdvertisingMaterialID)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read leads API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leads API returned status %d", resp.StatusCode)
	}

	var envelope models.LeadsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamShape, err)
	}
	if envelope.Data == nil || envelope.Data.Leads == nil {
		return nil, ErrUpstreamShape
	}

	leads := *envelope.Data.Leads
	c.logger.WithFields(logrus.Fields{
		"leads":     len(leads),
		"status":    filter.Status,
		"date_from": filter.DateFrom,
		"date_to":   filter.DateTo,
	}).Info("Fetched leads from upstream")

	return leads, nil
}
