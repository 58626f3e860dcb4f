package rate

import "github.com/shopspring/decimal"

// CurrencyView is one row of the at-a-glance currency listing.
type CurrencyView struct {
	Code           string          `json:"code"`
	Rate           decimal.Decimal `json:"rate" swaggertype:"string" example:"2"`
	LastRefreshed  string          `json:"lastRefreshed"`
	RateVsDisplay  decimal.Decimal `json:"rateVsDisplay" swaggertype:"string" example:"2"`
	PriceInDisplay decimal.Decimal `json:"priceInDisplay" swaggertype:"string" example:"0.5"`
}

// ConversionResult is the outcome of a single conversion request, derived
// from one rate snapshot.
type ConversionResult struct {
	From               string
	To                 string
	Rate               decimal.Decimal
	OriginalValue      decimal.Decimal
	ConvertedValue     decimal.Decimal
	RatesLastUpdatedAt string
}
