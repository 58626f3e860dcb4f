package rate

import (
	"context"
	"fmt"

	"fxconvert/internal/domain"

	"github.com/shopspring/decimal"
)

// ConvertedValuePlaces bounds floating noise while keeping sub-cent
// precision for volatile assets like BTC.
const ConvertedValuePlaces = 9

// SnapshotSource yields a consistent rate snapshot, refreshing it when stale.
type SnapshotSource interface {
	EnsureFresh(ctx context.Context) (*domain.RateSnapshot, error)
}

// Converter derives conversions from cached rate snapshots. Every operation
// checks freshness exactly once, so both legs of a conversion always come
// from the same refresh cycle.
type Converter struct {
	cache      SnapshotSource
	currencies *domain.CurrencySet
}

func NewConverter(cache SnapshotSource, currencies *domain.CurrencySet) *Converter {
	return &Converter{cache: cache, currencies: currencies}
}

// ConversionRate returns how many units of "to" one unit of "from" buys.
func (c *Converter) ConversionRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	snap, err := c.cache.EnsureFresh(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return conversionRate(snap, from, to)
}

// Convert applies a conversion rate to an amount, rounded half-up to 9
// fractional digits.
func (c *Converter) Convert(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(ConvertedValuePlaces)
}

// ConvertAmount performs a whole conversion over a single snapshot.
func (c *Converter) ConvertAmount(ctx context.Context, from, to string, amount decimal.Decimal) (*ConversionResult, error) {
	snap, err := c.cache.EnsureFresh(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := conversionRate(snap, from, to)
	if err != nil {
		return nil, err
	}
	return &ConversionResult{
		From:               from,
		To:                 to,
		Rate:               rate,
		OriginalValue:      amount,
		ConvertedValue:     c.Convert(amount, rate),
		RatesLastUpdatedAt: snap.RefreshedAt().Format(DateLayout),
	}, nil
}

// ListAllWithValues produces one row per supported currency in configured
// order, each annotated with its rate against the display currency and the
// price of one unit expressed in it. Freshness is checked once for the whole
// listing, not once per row.
func (c *Converter) ListAllWithValues(ctx context.Context, display string) ([]CurrencyView, error) {
	snap, err := c.cache.EnsureFresh(ctx)
	if err != nil {
		return nil, err
	}
	displayRate, ok := snap.Rate(display)
	if !ok {
		return nil, fmt.Errorf("%q: %w", display, domain.ErrUnsupportedCurrency)
	}

	views := make([]CurrencyView, 0, len(c.currencies.Codes()))
	for _, code := range c.currencies.Codes() {
		r, ok := snap.Rate(code)
		if !ok {
			return nil, fmt.Errorf("%q: %w", code, domain.ErrUnknownCurrency)
		}
		views = append(views, CurrencyView{
			Code:           code,
			Rate:           r.Rate,
			LastRefreshed:  r.LastRefreshed.Format(DateLayout),
			RateVsDisplay:  r.Rate.Div(displayRate.Rate).Round(ConvertedValuePlaces),
			PriceInDisplay: displayRate.Rate.Div(r.Rate).Round(ConvertedValuePlaces),
		})
	}
	return views, nil
}

func conversionRate(snap *domain.RateSnapshot, from, to string) (decimal.Decimal, error) {
	fromRate, ok := snap.Rate(from)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", from, domain.ErrUnsupportedCurrency)
	}
	toRate, ok := snap.Rate(to)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", to, domain.ErrUnsupportedCurrency)
	}
	return toRate.Rate.Div(fromRate.Rate), nil
}
