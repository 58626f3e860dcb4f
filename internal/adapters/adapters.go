package adapters

import (
	"context"
	"fxconvert/internal/domain"

	"github.com/shopspring/decimal"
)

// RateProvider fetches fresh quotes for the baseline currency against the
// given target codes. Implementations return a mapping code -> rate with the
// provider's key prefix already stripped and validated.
type RateProvider interface {
	FetchRates(ctx context.Context, base string, codes []string) (map[string]decimal.Decimal, error)
}

type RateStore interface {
	GetAll(ctx context.Context) ([]domain.CurrencyRate, error)
	UpsertAll(ctx context.Context, rates []domain.CurrencyRate) error
}

// SnapshotCache holds the current immutable rate snapshot in process memory.
// A miss is never an error: the store remains the source of truth.
type SnapshotCache interface {
	Get() (*domain.RateSnapshot, bool)
	Set(snapshot *domain.RateSnapshot)
}
