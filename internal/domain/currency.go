package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is one row of the persisted rate table: how many units of
// Code one unit of the baseline currency buys.
type CurrencyRate struct {
	Code          string
	Rate          decimal.Decimal
	LastRefreshed time.Time
}

// CurrencySet is the fixed, ordered set of supported currency codes with one
// baseline code among them. Built once from config, immutable afterwards.
type CurrencySet struct {
	codes    []string // configured order, read only
	codesSet map[string]struct{}
	base     string
}

func NewCurrencySet(codes []string, base string) (*CurrencySet, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("at least one supported currency is required")
	}

	ordered := make([]string, 0, len(codes))
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		code := strings.ToUpper(strings.TrimSpace(c))
		if len(code) < 3 || len(code) > 16 {
			return nil, fmt.Errorf("invalid currency code %q: must be 3-16 characters", c)
		}
		if _, ok := set[code]; ok {
			return nil, fmt.Errorf("duplicate currency code %q", code)
		}
		set[code] = struct{}{}
		ordered = append(ordered, code)
	}

	baseCode := strings.ToUpper(strings.TrimSpace(base))
	if _, ok := set[baseCode]; !ok {
		return nil, fmt.Errorf("baseline currency %q is not among supported codes", base)
	}

	return &CurrencySet{codes: ordered, codesSet: set, base: baseCode}, nil
}

func (s *CurrencySet) Base() string { return s.base }

func (s *CurrencySet) Contains(code string) bool {
	_, ok := s.codesSet[code]
	return ok
}

// Codes returns the supported codes in configured order.
func (s *CurrencySet) Codes() []string {
	return slices.Clone(s.codes)
}

// NonBaseCodes returns every supported code except the baseline, in
// configured order. This is exactly the set the rate provider must be
// queried with.
func (s *CurrencySet) NonBaseCodes() []string {
	codes := make([]string, 0, len(s.codes)-1)
	for _, c := range s.codes {
		if c != s.base {
			codes = append(codes, c)
		}
	}
	return codes
}
