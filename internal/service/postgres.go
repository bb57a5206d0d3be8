package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ak-pc/Dextro/helper"
	"github.com/ak-pc/Dextro/internal/errors"
	"github.com/ak-pc/Dextro/internal/model"

	"github.com/lib/pq"
)

// PostgresClient reads tables over a direct SQL connection, for
// deployments that expose the database itself rather than the REST API.
type PostgresClient struct {
	db      *sql.DB
	maxRows int
}

func NewPostgresClient(dsn string, maxRows int) (*PostgresClient, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		// DSN is deliberately left out of the error: it carries credentials
		return nil, errors.NewConnectionError("postgres", err)
	}
	return &PostgresClient{db: db, maxRows: maxRows}, nil
}

func (p *PostgresClient) FetchTable(ctx context.Context, table string) (*model.RowSet, error) {
	if !helper.IsValidIdentifier(table) {
		return nil, errors.NewQueryError(table, fmt.Errorf("invalid table name"))
	}

	// sql.Open does not dial; ping first so unreachable-backend failures
	// report as connection errors rather than query errors
	if err := p.db.PingContext(ctx); err != nil {
		return nil, errors.NewConnectionError("postgres", err)
	}

	query := "SELECT * FROM " + pq.QuoteIdentifier(table)
	if p.maxRows > 0 {
		query += fmt.Sprintf(" LIMIT %d", p.maxRows)
	}

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewQueryError(table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.NewQueryError(table, err)
	}

	rs := model.NewRowSet()
	rs.RegisterColumns(cols...)

	for rows.Next() {
		values := make([]any, len(cols))
		pointers := make([]any, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, errors.NewQueryError(table, err)
		}

		rec := model.Record{}
		for i, name := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			rec[name] = v
		}
		rs.Append(rec, cols)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryError(table, err)
	}

	return rs, nil
}

func (p *PostgresClient) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
