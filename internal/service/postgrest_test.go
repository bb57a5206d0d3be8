package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ak-pc/Dextro/internal/config"
	"github.com/ak-pc/Dextro/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestSupabaseFetchTable(t *testing.T) {
	var gotPath, gotQuery, gotAPIKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "Alice", "email": "alice@example.com"},
			{"id": 2, "name": "Bob", "email": "bob@example.com"},
			{"id": 3, "name": "Carol", "email": null}
		]`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key", 0)
	rs, err := client.FetchTable(context.Background(), "customer_profile")

	assert.NoError(t, err)
	assert.Equal(t, "/rest/v1/customer_profile", gotPath)
	assert.Equal(t, "select=%2A", gotQuery)
	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer anon-key", gotAuth)

	assert.Equal(t, 3, rs.RowCount())
	assert.Equal(t, 3, rs.ColumnCount())
	// Column order follows the payload, not map iteration
	assert.Equal(t, []string{"id", "name", "email"}, rs.Columns)
	assert.Equal(t, []any{json.Number("1"), "Alice", "alice@example.com"}, rs.Rows()[0])
	assert.Nil(t, rs.Rows()[2][2])
}

func TestSupabaseFetchTableRowCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "500", r.URL.Query().Get("limit"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key", 500)
	_, err := client.FetchTable(context.Background(), "customer_profile")
	assert.NoError(t, err)
}

func TestSupabaseFetchTableEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key", 0)
	rs, err := client.FetchTable(context.Background(), "customer_profile")

	assert.NoError(t, err)
	assert.Equal(t, 0, rs.RowCount())
	assert.Equal(t, 0, rs.ColumnCount())
}

func TestSupabaseFetchTableRaggedRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "name": "Alice"}, {"id": 2, "phone": "555-0100"}]`))
	}))
	defer srv.Close()

	client := NewSupabaseClient(srv.URL, "anon-key", 0)
	rs, err := client.FetchTable(context.Background(), "customer_profile")

	assert.NoError(t, err)
	// Distinct keys across all records, first-seen order
	assert.Equal(t, []string{"id", "name", "phone"}, rs.Columns)
}

func TestSupabaseFetchTableErrors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		isConnection bool
		isQuery      bool
		contains     string
	}{
		{
			name:         "credential rejected",
			status:       http.StatusUnauthorized,
			body:         `{"message": "Invalid API key"}`,
			isConnection: true,
			contains:     "credential rejected (HTTP 401)",
		},
		{
			name:         "forbidden",
			status:       http.StatusForbidden,
			body:         `{}`,
			isConnection: true,
		},
		{
			name:     "table missing",
			status:   http.StatusNotFound,
			body:     `{"message": "relation \"public.customer_profile\" does not exist"}`,
			isQuery:  true,
			contains: `relation "public.customer_profile" does not exist (HTTP 404)`,
		},
		{
			name:     "bad request without message body",
			status:   http.StatusBadRequest,
			body:     `oops`,
			isQuery:  true,
			contains: "HTTP 400",
		},
		{
			name:    "malformed payload",
			status:  http.StatusOK,
			body:    `{"not": "an array"}`,
			isQuery: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewSupabaseClient(srv.URL, "anon-key", 0)
			_, err := client.FetchTable(context.Background(), "customer_profile")

			assert.Error(t, err)
			assert.Equal(t, tc.isConnection, errors.IsConnection(err))
			assert.Equal(t, tc.isQuery, errors.IsQuery(err))
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}

func TestSupabaseFetchTableUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := NewSupabaseClient(srv.URL, "anon-key", 0)
	_, err := client.FetchTable(context.Background(), "customer_profile")

	assert.Error(t, err)
	assert.True(t, errors.IsConnection(err))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
		check   func(t *testing.T, c DataLakeClient)
	}{
		{
			name: "supabase driver",
			cfg:  config.Config{Driver: config.DriverSupabase, SupabaseURL: "https://x.supabase.co", SupabaseKey: "k"},
			check: func(t *testing.T, c DataLakeClient) {
				assert.IsType(t, &SupabaseClient{}, c)
			},
		},
		{
			name: "postgres driver",
			cfg:  config.Config{Driver: config.DriverPostgres, DatabaseURL: "postgres://u:p@localhost/db?sslmode=disable"},
			check: func(t *testing.T, c DataLakeClient) {
				assert.IsType(t, &PostgresClient{}, c)
			},
		},
		{
			name:    "missing configuration",
			cfg:     config.Config{Driver: config.DriverSupabase},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsConfiguration(err))
				return
			}
			assert.NoError(t, err)
			defer client.Close()
			tc.check(t, client)
		})
	}
}
