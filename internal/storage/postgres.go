package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

// PostgresStore keeps records in a single upsert table:
//
//	CREATE TABLE dashboard_records (
//	    user_id    TEXT NOT NULL,
//	    feature    TEXT NOT NULL,
//	    payload    JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (user_id, feature)
//	);
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStore(dsn string, logger internal.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (p *PostgresStore) Get(ctx context.Context, userID, feature string) (json.RawMessage, bool, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT payload FROM dashboard_records WHERE user_id = $1 AND feature = $2`,
		userID, feature)
	var payload json.RawMessage
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		p.logger.Errorf("failed to query record: %v", err)
		return nil, false, err
	}
	if !json.Valid(payload) {
		return nil, false, nil
	}
	return payload, true, nil
}

func (p *PostgresStore) Put(ctx context.Context, userID, feature string, value json.RawMessage) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO dashboard_records (user_id, feature, payload, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id, feature)
		 DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		userID, feature, value)
	if err != nil {
		p.logger.Errorf("failed to upsert record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, userID, feature string) error {
	_, err := p.pool.Exec(ctx,
		`DELETE FROM dashboard_records WHERE user_id = $1 AND feature = $2`,
		userID, feature)
	if err != nil {
		p.logger.Errorf("failed to delete record: %v", err)
		return err
	}
	return nil
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}

var _ RecordStore = (*PostgresStore)(nil)
