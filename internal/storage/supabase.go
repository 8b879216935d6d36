package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"impacttracker/pkg/types"
)

const (
	charitiesTable   = "charities"
	suggestionsTable = "charity_suggestions"
)

// SupabaseTables reads and writes the donation tables through Supabase's
// PostgREST endpoint.
type SupabaseTables struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewSupabaseTables creates a new PostgREST client for the project at baseURL
// (e.g. https://abcd.supabase.co).
func NewSupabaseTables(baseURL, apiKey string, httpClient *http.Client) *SupabaseTables {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &SupabaseTables{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (s *SupabaseTables) tableURL(table string, query url.Values) string {
	u := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, table)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (s *SupabaseTables) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// FetchCharities returns every charity ordered by latitude with its stories embedded
func (s *SupabaseTables) FetchCharities(ctx context.Context) ([]*types.CharityWithStories, error) {
	query := url.Values{}
	query.Set("select", "*,stories(*)")
	query.Set("order", "latitude.asc")

	req, err := s.newRequest(ctx, http.MethodGet, s.tableURL(charitiesTable, query), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch charities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fetch charities failed with status %d: %s", resp.StatusCode, string(body))
	}

	var charities []*types.CharityWithStories
	if err := json.NewDecoder(resp.Body).Decode(&charities); err != nil {
		return nil, fmt.Errorf("failed to decode charities: %w", err)
	}

	for _, c := range charities {
		if c.Stories == nil {
			c.Stories = []*types.CharityStory{}
		}
	}

	return charities, nil
}

// SubmitSuggestion inserts one row into the suggestions table
func (s *SupabaseTables) SubmitSuggestion(ctx context.Context, suggestion *types.CharitySuggestion) error {
	payload, err := json.Marshal([]*types.CharitySuggestion{suggestion})
	if err != nil {
		return fmt.Errorf("failed to encode suggestion: %w", err)
	}

	req, err := s.newRequest(ctx, http.MethodPost, s.tableURL(suggestionsTable, nil), bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit suggestion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("submit suggestion failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
