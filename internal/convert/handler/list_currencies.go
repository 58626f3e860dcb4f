package handler

import (
	"net/http"

	"fxconvert/internal/rate"
)

type ListCurrenciesResponse struct {
	Display    string              `json:"display" example:"USD"`
	Currencies []rate.CurrencyView `json:"currencies"`
}

// ListCurrencies godoc
// @Summary List supported currencies with current quotes
// @Description One row per supported currency: rate against the baseline, last refresh date and value relative to the display currency
// @Tags Currencies
// @Produce json
// @Success 200 {object} ListCurrenciesResponse
// @Failure 502 {object} errorResponse
// @Router /currencies [get]
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListAllWithValues(r.Context(), h.display)
	if err != nil {
		h.writeServiceError(w, err, "ListCurrencies")
		return
	}

	writeJSON(w, http.StatusOK, ListCurrenciesResponse{
		Display:    h.display,
		Currencies: views,
	})
}
