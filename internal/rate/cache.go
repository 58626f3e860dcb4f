package rate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fxconvert/internal/adapters"
	"fxconvert/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DateLayout is how refresh timestamps are presented to clients (day/month/year).
const DateLayout = "02/01/2006"

// Cache serves currency rates from the store, refreshing them from the
// external provider when the cached table goes stale. Staleness means the
// baseline row was not refreshed on the current UTC calendar day. The whole
// check-fetch-write sequence runs under a single-writer lock, so concurrent
// requests can never interleave partial updates and a single conversion
// always sees one consistent snapshot for both legs.
type Cache struct {
	store      adapters.RateStore
	provider   adapters.RateProvider
	snapshots  adapters.SnapshotCache
	currencies *domain.CurrencySet
	now        func() time.Time

	mu sync.Mutex
}

func NewCache(store adapters.RateStore, provider adapters.RateProvider, snapshots adapters.SnapshotCache, currencies *domain.CurrencySet) *Cache {
	return &Cache{
		store:      store,
		provider:   provider,
		snapshots:  snapshots,
		currencies: currencies,
		now:        time.Now,
	}
}

// IsFresh reports whether the stored rates can be served without refreshing:
// false when the store is empty or the baseline row's last refresh is not on
// the current UTC calendar day.
func (c *Cache) IsFresh(ctx context.Context) (bool, error) {
	snap, err := c.snapshot(ctx)
	if err != nil {
		return false, err
	}
	return c.isFresh(snap), nil
}

// EnsureFresh returns a fresh snapshot, refreshing from the provider first if
// needed. On provider or store failure the previous state stays fully intact.
func (c *Cache) EnsureFresh(ctx context.Context) (*domain.RateSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if c.isFresh(snap) {
		return snap, nil
	}
	return c.refresh(ctx)
}

// GetRate returns the stored rate for code relative to the baseline,
// refreshing first when stale.
func (c *Cache) GetRate(ctx context.Context, code string) (decimal.Decimal, error) {
	snap, err := c.EnsureFresh(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	r, ok := snap.Rate(code)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", code, domain.ErrUnknownCurrency)
	}
	return r.Rate, nil
}

// LastRefreshedAt returns the baseline's last refresh as a dd/mm/yyyy string.
func (c *Cache) LastRefreshedAt(ctx context.Context) (string, error) {
	snap, err := c.EnsureFresh(ctx)
	if err != nil {
		return "", err
	}
	return snap.RefreshedAt().Format(DateLayout), nil
}

// snapshot returns the current snapshot, loading it from the store on a
// cache miss. A nil snapshot means the store is empty (pre-bootstrap).
func (c *Cache) snapshot(ctx context.Context) (*domain.RateSnapshot, error) {
	if snap, ok := c.snapshots.Get(); ok {
		return snap, nil
	}

	rows, err := c.store.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency rates: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	refreshedAt := time.Time{}
	for _, r := range rows {
		if r.Code == c.currencies.Base() {
			refreshedAt = r.LastRefreshed
			break
		}
	}
	snap := domain.NewRateSnapshot(rows, refreshedAt)
	c.snapshots.Set(snap)
	return snap, nil
}

func (c *Cache) isFresh(snap *domain.RateSnapshot) bool {
	if snap == nil || snap.Len() == 0 {
		return false
	}
	now := c.now().UTC()
	last := snap.RefreshedAt().UTC()
	return now.Year() == last.Year() && now.YearDay() == last.YearDay()
}

// refresh fetches quotes for all non-baseline codes, writes the whole cycle
// through to the store and publishes the new snapshot. Caller holds c.mu.
func (c *Cache) refresh(ctx context.Context) (*domain.RateSnapshot, error) {
	execID := uuid.NewString()
	base := c.currencies.Base()
	targets := c.currencies.NonBaseCodes()
	logrus.Infof("Refreshing %d currency rates against %s; execID: %s", len(targets), base, execID)

	quotes, err := c.provider.FetchRates(ctx, base, targets)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRateProvider, err)
	}

	// One timestamp for the whole cycle, baseline included.
	refreshedAt := c.now().UTC()
	rows := make([]domain.CurrencyRate, 0, len(quotes)+1)
	rows = append(rows, domain.CurrencyRate{Code: base, Rate: decimal.NewFromInt(1), LastRefreshed: refreshedAt})
	for _, code := range targets {
		rows = append(rows, domain.CurrencyRate{Code: code, Rate: quotes[code], LastRefreshed: refreshedAt})
	}

	if err = c.store.UpsertAll(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to store refreshed rates: %w", err)
	}

	snap := domain.NewRateSnapshot(rows, refreshedAt)
	c.snapshots.Set(snap)
	logrus.Infof("%d currency rates were successfully refreshed; execID: %s", len(rows), execID)
	return snap, nil
}
