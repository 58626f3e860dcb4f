package handler

import (
	"net/http"
	"strings"

	"fxconvert/internal/rate"

	"github.com/shopspring/decimal"
)

type ConvertResponse struct {
	From               string          `json:"from" example:"USD"`
	To                 string          `json:"to" example:"EUR"`
	// Decimal values serialize as JSON strings to keep full precision.
	OriginalValue      decimal.Decimal `json:"originalValue" swaggertype:"string" example:"123.45"`
	ConvertedValue     decimal.Decimal `json:"convertedValue" swaggertype:"string" example:"246.9"`
	RatesLastUpdatedAt string          `json:"ratesLastUpdatedAt" example:"01/09/2026"`
}

// Convert godoc
// @Summary Convert an amount between two supported currencies
// @Tags Currencies
// @Produce json
// @Param from query string true "source currency code" example(BRL)
// @Param to query string true "target currency code" example(USD)
// @Param amount query number true "amount to convert" example(123.45)
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /convert [get]
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))
	amountRaw := strings.TrimSpace(q.Get("amount"))

	// Fixed ordering: missing params, then currency support, then amount.
	// The first failing check wins.
	missing := h.validator.MissingParams([]rate.Param{
		{Name: "from", Value: from},
		{Name: "to", Value: to},
		{Name: "amount", Value: amountRaw},
	})
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:         "the parameters from, to and amount are required",
			MissingParams: missing,
		})
		return
	}

	if err := h.validator.ValidateCurrencies(from, to); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:               err.Error(),
			SupportedCurrencies: h.validator.SupportedCurrencies(),
		})
		return
	}

	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "the parameter amount must be a number"})
		return
	}

	result, err := h.service.ConvertAmount(r.Context(), from, to, amount)
	if err != nil {
		h.writeServiceError(w, err, "Convert")
		return
	}

	writeJSON(w, http.StatusOK, ConvertResponse{
		From:               result.From,
		To:                 result.To,
		OriginalValue:      result.OriginalValue,
		ConvertedValue:     result.ConvertedValue,
		RatesLastUpdatedAt: result.RatesLastUpdatedAt,
	})
}
