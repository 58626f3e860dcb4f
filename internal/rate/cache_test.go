package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"fxconvert/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockRateStore struct{ mock.Mock }

func (m *MockRateStore) GetAll(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).([]domain.CurrencyRate)
	return rates, args.Error(1)
}

func (m *MockRateStore) UpsertAll(ctx context.Context, rates []domain.CurrencyRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) FetchRates(ctx context.Context, base string, codes []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, base, codes)
	rates, _ := args.Get(0).(map[string]decimal.Decimal)
	return rates, args.Error(1)
}

// memSnapshotCache is a plain in-memory stand-in for the ristretto cache.
type memSnapshotCache struct {
	snap *domain.RateSnapshot
}

func (c *memSnapshotCache) Get() (*domain.RateSnapshot, bool) {
	return c.snap, c.snap != nil
}

func (c *memSnapshotCache) Set(snap *domain.RateSnapshot) { c.snap = snap }

// --- helpers ---

var testNow = time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

func testCurrencies(t *testing.T) *domain.CurrencySet {
	t.Helper()
	set, err := domain.NewCurrencySet([]string{"USD", "BRL", "EUR", "BTC"}, "USD")
	require.NoError(t, err)
	return set
}

func testQuotes() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"BRL": decimal.NewFromInt(3),
		"EUR": decimal.NewFromInt(2),
		"BTC": decimal.NewFromInt(4),
	}
}

func newTestCache(t *testing.T) (*Cache, *MockRateStore, *MockRateProvider, *memSnapshotCache) {
	t.Helper()
	store := new(MockRateStore)
	provider := new(MockRateProvider)
	snapshots := &memSnapshotCache{}
	c := NewCache(store, provider, snapshots, testCurrencies(t))
	c.now = func() time.Time { return testNow }
	return c, store, provider, snapshots
}

// --- EnsureFresh ---

func TestCache_EnsureFresh_BootstrapsEmptyStore(t *testing.T) {
	c, store, provider, _ := newTestCache(t)
	ctx := context.Background()

	store.On("GetAll", mock.Anything).Return(nil, nil).Once()
	provider.On("FetchRates", mock.Anything, "USD", []string{"BRL", "EUR", "BTC"}).Return(testQuotes(), nil).Once()
	store.On("UpsertAll", mock.Anything, mock.MatchedBy(func(rows []domain.CurrencyRate) bool {
		if len(rows) != 4 {
			return false
		}
		for _, r := range rows {
			if !r.LastRefreshed.Equal(testNow) {
				return false
			}
		}
		return rows[0].Code == "USD" && rows[0].Rate.Equal(decimal.NewFromInt(1))
	})).Return(nil).Once()

	snap, err := c.EnsureFresh(ctx)

	require.NoError(t, err)
	require.Equal(t, 4, snap.Len())
	usd, ok := snap.Rate("USD")
	require.True(t, ok)
	require.True(t, usd.Rate.Equal(decimal.NewFromInt(1)))
	store.AssertExpectations(t)
	provider.AssertExpectations(t)
}

func TestCache_EnsureFresh_IsIdempotentWithinWindow(t *testing.T) {
	c, store, provider, _ := newTestCache(t)
	ctx := context.Background()

	store.On("GetAll", mock.Anything).Return(nil, nil).Once()
	provider.On("FetchRates", mock.Anything, "USD", []string{"BRL", "EUR", "BTC"}).Return(testQuotes(), nil).Once()
	store.On("UpsertAll", mock.Anything, mock.Anything).Return(nil).Once()

	first, err := c.EnsureFresh(ctx)
	require.NoError(t, err)

	// second call on the same calendar day: no provider call, no store write
	second, err := c.EnsureFresh(ctx)
	require.NoError(t, err)
	require.Same(t, first, second)

	provider.AssertNumberOfCalls(t, "FetchRates", 1)
	store.AssertNumberOfCalls(t, "UpsertAll", 1)
}

func TestCache_EnsureFresh_RefreshesStaleRates(t *testing.T) {
	c, store, provider, snapshots := newTestCache(t)
	ctx := context.Background()

	yesterday := testNow.AddDate(0, 0, -1)
	stale := []domain.CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: yesterday},
		{Code: "BRL", Rate: decimal.NewFromInt(5), LastRefreshed: yesterday},
		{Code: "EUR", Rate: decimal.NewFromInt(9), LastRefreshed: yesterday},
		{Code: "BTC", Rate: decimal.NewFromInt(7), LastRefreshed: yesterday},
	}
	snapshots.Set(domain.NewRateSnapshot(stale, yesterday))

	provider.On("FetchRates", mock.Anything, "USD", []string{"BRL", "EUR", "BTC"}).Return(testQuotes(), nil).Once()
	store.On("UpsertAll", mock.Anything, mock.MatchedBy(func(rows []domain.CurrencyRate) bool {
		return len(rows) == 4
	})).Return(nil).Once()

	snap, err := c.EnsureFresh(ctx)

	require.NoError(t, err)
	require.True(t, snap.RefreshedAt().Equal(testNow))
	eur, ok := snap.Rate("EUR")
	require.True(t, ok)
	require.True(t, eur.Rate.Equal(decimal.NewFromInt(2)))
	store.AssertExpectations(t)
	provider.AssertExpectations(t)
}

func TestCache_EnsureFresh_ProviderErrorKeepsPreviousState(t *testing.T) {
	c, store, provider, snapshots := newTestCache(t)
	ctx := context.Background()

	yesterday := testNow.AddDate(0, 0, -1)
	stale := domain.NewRateSnapshot([]domain.CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: yesterday},
	}, yesterday)
	snapshots.Set(stale)

	provider.On("FetchRates", mock.Anything, "USD", mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := c.EnsureFresh(ctx)

	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrRateProvider)
	// no partial write, previous snapshot untouched
	store.AssertNotCalled(t, "UpsertAll", mock.Anything, mock.Anything)
	got, ok := snapshots.Get()
	require.True(t, ok)
	require.Same(t, stale, got)
}

func TestCache_EnsureFresh_StoreWriteErrorKeepsPreviousSnapshot(t *testing.T) {
	c, store, provider, snapshots := newTestCache(t)
	ctx := context.Background()

	store.On("GetAll", mock.Anything).Return(nil, nil).Once()
	provider.On("FetchRates", mock.Anything, "USD", mock.Anything).Return(testQuotes(), nil).Once()
	store.On("UpsertAll", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := c.EnsureFresh(ctx)

	require.Error(t, err)
	_, ok := snapshots.Get()
	require.False(t, ok)
}

func TestCache_EnsureFresh_LoadsSnapshotFromStoreOnCacheMiss(t *testing.T) {
	c, store, provider, _ := newTestCache(t)
	ctx := context.Background()

	rows := []domain.CurrencyRate{
		{Code: "BRL", Rate: decimal.NewFromInt(3), LastRefreshed: testNow},
		{Code: "BTC", Rate: decimal.NewFromInt(4), LastRefreshed: testNow},
		{Code: "EUR", Rate: decimal.NewFromInt(2), LastRefreshed: testNow},
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: testNow},
	}
	store.On("GetAll", mock.Anything).Return(rows, nil).Once()

	snap, err := c.EnsureFresh(ctx)

	require.NoError(t, err)
	require.Equal(t, 4, snap.Len())
	require.True(t, snap.RefreshedAt().Equal(testNow))
	provider.AssertNotCalled(t, "FetchRates", mock.Anything, mock.Anything, mock.Anything)
}

// --- IsFresh ---

func TestCache_IsFresh_FalseOnEmptyStore(t *testing.T) {
	c, store, _, _ := newTestCache(t)

	store.On("GetAll", mock.Anything).Return(nil, nil).Once()

	fresh, err := c.IsFresh(context.Background())

	require.NoError(t, err)
	require.False(t, fresh)
}

func TestCache_IsFresh_FalseOnPreviousCalendarDay(t *testing.T) {
	c, _, _, snapshots := newTestCache(t)

	// 23:59 the previous day is stale even though less than a day has passed
	lastNight := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	snapshots.Set(domain.NewRateSnapshot([]domain.CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: lastNight},
	}, lastNight))

	fresh, err := c.IsFresh(context.Background())

	require.NoError(t, err)
	require.False(t, fresh)
}

func TestCache_IsFresh_TrueOnSameCalendarDay(t *testing.T) {
	c, _, _, snapshots := newTestCache(t)

	morning := time.Date(2026, 9, 1, 0, 1, 0, 0, time.UTC)
	snapshots.Set(domain.NewRateSnapshot([]domain.CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: morning},
	}, morning))

	fresh, err := c.IsFresh(context.Background())

	require.NoError(t, err)
	require.True(t, fresh)
}

// --- GetRate / LastRefreshedAt ---

func TestCache_GetRate_BaselineIsAlwaysOne(t *testing.T) {
	c, store, provider, _ := newTestCache(t)
	ctx := context.Background()

	store.On("GetAll", mock.Anything).Return(nil, nil).Once()
	provider.On("FetchRates", mock.Anything, "USD", mock.Anything).Return(testQuotes(), nil).Once()
	store.On("UpsertAll", mock.Anything, mock.Anything).Return(nil).Once()

	got, err := c.GetRate(ctx, "USD")

	require.NoError(t, err)
	require.True(t, got.Equal(decimal.NewFromInt(1)))
}

func TestCache_GetRate_UnknownCurrency(t *testing.T) {
	c, _, _, snapshots := newTestCache(t)

	snapshots.Set(domain.NewRateSnapshot([]domain.CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: testNow},
	}, testNow))

	_, err := c.GetRate(context.Background(), "EUR")

	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestCache_LastRefreshedAt_FormatsDayMonthYear(t *testing.T) {
	c, _, _, snapshots := newTestCache(t)

	snapshots.Set(domain.NewRateSnapshot([]domain.CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: testNow},
	}, testNow))

	got, err := c.LastRefreshedAt(context.Background())

	require.NoError(t, err)
	require.Equal(t, "01/09/2026", got)
}
