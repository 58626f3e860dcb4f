package rate

import (
	"fmt"
	"slices"
	"strings"

	"fxconvert/internal/domain"
)

// Param is a named request parameter as received from the query string.
type Param struct {
	Name  string
	Value string
}

// Validator checks request input against the supported currency set and the
// supported export formats before any cache or engine call is made.
type Validator struct {
	currencies *domain.CurrencySet
	formatsSet map[string]struct{} // read only copy
	formatsLst []string            // read only copy
}

func NewValidator(currencies *domain.CurrencySet, formats []string) *Validator {
	formatsSet := make(map[string]struct{}, len(formats))
	for _, f := range formats {
		formatsSet[f] = struct{}{}
	}
	return &Validator{
		currencies: currencies,
		formatsSet: formatsSet,
		formatsLst: slices.Clone(formats),
	}
}

// MissingParams returns the names of every absent or empty parameter, in
// input order, so the caller can report them all at once.
func (v *Validator) MissingParams(params []Param) []string {
	var missing []string
	for _, p := range params {
		if strings.TrimSpace(p.Value) == "" {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// ValidateCurrencies fails on the first code outside the supported set.
func (v *Validator) ValidateCurrencies(codes ...string) error {
	for _, code := range codes {
		if !v.currencies.Contains(code) {
			return fmt.Errorf("%q: %w", code, domain.ErrUnsupportedCurrency)
		}
	}
	return nil
}

func (v *Validator) ValidateFormat(format string) error {
	if _, ok := v.formatsSet[format]; !ok {
		return fmt.Errorf("%q: %w", format, domain.ErrUnsupportedFormat)
	}
	return nil
}

func (v *Validator) SupportedCurrencies() []string {
	return v.currencies.Codes()
}

func (v *Validator) SupportedFormats() []string {
	return slices.Clone(v.formatsLst)
}
