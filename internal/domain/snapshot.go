package domain

import "time"

// RateSnapshot is an immutable view of the whole rate table taken at one
// refresh cycle. It is the unit of atomic publication: readers either see
// the previous snapshot or the new one, never a mix.
type RateSnapshot struct {
	byCode      map[string]CurrencyRate
	refreshedAt time.Time
}

func NewRateSnapshot(rates []CurrencyRate, refreshedAt time.Time) *RateSnapshot {
	byCode := make(map[string]CurrencyRate, len(rates))
	for _, r := range rates {
		byCode[r.Code] = r
	}
	return &RateSnapshot{byCode: byCode, refreshedAt: refreshedAt}
}

func (s *RateSnapshot) Rate(code string) (CurrencyRate, bool) {
	r, ok := s.byCode[code]
	return r, ok
}

func (s *RateSnapshot) Len() int { return len(s.byCode) }

// RefreshedAt is the baseline's last successful refresh time (UTC).
func (s *RateSnapshot) RefreshedAt() time.Time { return s.refreshedAt }
