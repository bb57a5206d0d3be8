package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ak-pc/Dextro/internal/errors"
	"github.com/ak-pc/Dextro/internal/model"
)

// SupabaseClient reads tables through Supabase's PostgREST endpoint:
// GET {url}/rest/v1/{table}?select=* with the anon key as both the apikey
// header and the bearer token.
type SupabaseClient struct {
	baseURL string
	apiKey  string
	maxRows int
	httpc   *http.Client
}

func NewSupabaseClient(baseURL, apiKey string, maxRows int) *SupabaseClient {
	return &SupabaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		maxRows: maxRows,
		httpc:   http.DefaultClient,
	}
}

func (s *SupabaseClient) FetchTable(ctx context.Context, table string) (*model.RowSet, error) {
	params := url.Values{"select": {"*"}}
	if s.maxRows > 0 {
		params.Set("limit", strconv.Itoa(s.maxRows))
	}
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", s.baseURL, url.PathEscape(table), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewConnectionError(s.baseURL, err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, errors.NewConnectionError(s.baseURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.NewConnectionError(s.baseURL, fmt.Errorf("credential rejected (HTTP %d)", resp.StatusCode))
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, errors.NewQueryError(table, backendError(resp))
	}

	rs, err := decodeRowSet(resp.Body)
	if err != nil {
		return nil, errors.NewQueryError(table, err)
	}
	return rs, nil
}

// Close is a no-op: the REST client holds no connection state of its own.
func (s *SupabaseClient) Close() error {
	return nil
}

// backendError surfaces PostgREST's error body when it has one.
func backendError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("%s (HTTP %d)", body.Message, resp.StatusCode)
	}
	return fmt.Errorf("HTTP %d", resp.StatusCode)
}

// decodeRowSet decodes a JSON array of objects into a RowSet. Go maps drop
// JSON key order, so keys are read off the token stream and registered in
// the order the backend emitted them.
func decodeRowSet(r io.Reader) (*model.RowSet, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("unexpected response shape: expected array, got %v", tok)
	}

	rs := model.NewRowSet()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode row: %w", err)
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("unexpected array element: %v", tok)
		}

		rec := model.Record{}
		var order []string
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, fmt.Errorf("decode column name: %w", err)
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected column name token: %v", keyTok)
			}

			var val any
			if err := dec.Decode(&val); err != nil {
				return nil, fmt.Errorf("decode value for column %q: %w", key, err)
			}
			rec[key] = val
			order = append(order, key)
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, fmt.Errorf("decode row: %w", err)
		}

		rs.Append(rec, order)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return rs, nil
}
