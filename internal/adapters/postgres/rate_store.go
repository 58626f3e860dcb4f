package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fxconvert/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type RateStore struct {
	pool *pgxpool.Pool
}

func (s *RateStore) GetAll(ctx context.Context) ([]domain.CurrencyRate, error) {
	const q = `
		select code, rate, last_refreshed
		from currency_rates
		order by code;
	`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency rates: %w", err)
	}
	defer rows.Close()

	rates := make([]domain.CurrencyRate, 0, 16)
	for rows.Next() {
		var r domain.CurrencyRate
		if err = rows.Scan(&r.Code, &r.Rate, &r.LastRefreshed); err != nil {
			return nil, fmt.Errorf("failed to scan currency rate: %w", err)
		}
		rates = append(rates, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency rates: %w", err)
	}
	return rates, nil
}

type upsertRow struct {
	Code          string          `json:"code"`
	Rate          decimal.Decimal `json:"rate"`
	LastRefreshed time.Time       `json:"last_refreshed"`
}

// UpsertAll writes a whole refresh cycle in one transaction: new codes are
// inserted, existing ones updated in place, rows are never deleted. Either
// every row commits or the previous table stays visible to concurrent readers.
func (s *RateStore) UpsertAll(ctx context.Context, rates []domain.CurrencyRate) error {
	if len(rates) == 0 {
		return nil
	}

	payload := make([]upsertRow, 0, len(rates))
	for _, r := range rates {
		payload = append(payload, upsertRow{Code: r.Code, Rate: r.Rate, LastRefreshed: r.LastRefreshed})
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal currency rates: %w", err)
	}

	const q = `
		insert into currency_rates (code, rate, last_refreshed)
		select r.code, r.rate, r.last_refreshed
		from json_to_recordset($1::json) as r(code text, rate numeric, last_refreshed timestamptz)
		on conflict (code) do update
		set rate = excluded.rate, last_refreshed = excluded.last_refreshed;
	`

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, q, json.RawMessage(payloadJSON)); err != nil {
		return fmt.Errorf("failed to upsert currency rates: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func NewRateStore(pool *pgxpool.Pool) *RateStore {
	return &RateStore{pool: pool}
}
