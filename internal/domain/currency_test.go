package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewCurrencySet_NormalizesAndKeepsOrder(t *testing.T) {
	set, err := NewCurrencySet([]string{" usd ", "brl", "EUR", "btc"}, "usd")
	require.NoError(t, err)

	require.Equal(t, "USD", set.Base())
	require.Equal(t, []string{"USD", "BRL", "EUR", "BTC"}, set.Codes())
	require.Equal(t, []string{"BRL", "EUR", "BTC"}, set.NonBaseCodes())
	require.True(t, set.Contains("BTC"))
	require.False(t, set.Contains("JPY"))
}

func TestNewCurrencySet_Errors(t *testing.T) {
	_, err := NewCurrencySet(nil, "USD")
	require.Error(t, err)

	_, err = NewCurrencySet([]string{"USD", "US"}, "USD")
	require.Error(t, err, "codes shorter than 3 characters are invalid")

	_, err = NewCurrencySet([]string{"USD", "USD"}, "USD")
	require.Error(t, err, "duplicates are invalid")

	_, err = NewCurrencySet([]string{"USD", "EUR"}, "BRL")
	require.Error(t, err, "baseline must be among the supported codes")
}

func TestCurrencySet_CodesAreCloned(t *testing.T) {
	set, err := NewCurrencySet([]string{"USD", "EUR"}, "USD")
	require.NoError(t, err)

	got := set.Codes()
	got[0] = "XXX"

	require.Equal(t, []string{"USD", "EUR"}, set.Codes())
}

func TestRateSnapshot_Lookup(t *testing.T) {
	refreshedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	snap := NewRateSnapshot([]CurrencyRate{
		{Code: "USD", Rate: decimal.NewFromInt(1), LastRefreshed: refreshedAt},
		{Code: "EUR", Rate: decimal.NewFromInt(2), LastRefreshed: refreshedAt},
	}, refreshedAt)

	require.Equal(t, 2, snap.Len())
	require.True(t, snap.RefreshedAt().Equal(refreshedAt))

	eur, ok := snap.Rate("EUR")
	require.True(t, ok)
	require.True(t, eur.Rate.Equal(decimal.NewFromInt(2)))

	_, ok = snap.Rate("JPY")
	require.False(t, ok)
}
