package service

import (
	"context"

	"github.com/ak-pc/Dextro/internal/config"
	"github.com/ak-pc/Dextro/internal/model"
)

// ProfileTable is the single table this viewer reads.
const ProfileTable = "customer_profile"

// DataLakeClient is an authenticated session to the backend. A client is
// built fresh for one render pass, used for one fetch, and closed.
type DataLakeClient interface {
	FetchTable(ctx context.Context, table string) (*model.RowSet, error)
	Close() error
}

// NewClient builds a client for the configured driver. Validation runs
// first so missing configuration never results in a network call.
func NewClient(cfg config.Config) (DataLakeClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		return NewPostgresClient(cfg.DatabaseURL, cfg.MaxRows)
	default:
		return NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.MaxRows), nil
	}
}
