package handler

import (
	"fmt"
	"net/http"
	"strings"

	"fxconvert/internal/export"
	"fxconvert/internal/rate"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var downloadHeader = []string{
	"From currency",
	"To currency",
	"Original Value",
	"Converted Value",
	"Last time rates were updated",
}

// ConvertAndDownload godoc
// @Summary Convert an amount and download the result as a file
// @Tags Currencies
// @Produce text/csv
// @Produce application/pdf
// @Param from query string true "source currency code" example(BRL)
// @Param to query string true "target currency code" example(USD)
// @Param amount query number true "amount to convert" example(123.45)
// @Param type query string true "file format" Enums(csv, pdf)
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /convert/download [get]
func (h *Handler) ConvertAndDownload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := strings.ToUpper(strings.TrimSpace(q.Get("from")))
	to := strings.ToUpper(strings.TrimSpace(q.Get("to")))
	amountRaw := strings.TrimSpace(q.Get("amount"))
	format := strings.ToLower(strings.TrimSpace(q.Get("type")))

	missing := h.validator.MissingParams([]rate.Param{
		{Name: "from", Value: from},
		{Name: "to", Value: to},
		{Name: "amount", Value: amountRaw},
		{Name: "type", Value: format},
	})
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:         "the parameters from, to, amount and type are required",
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

	if err := h.validator.ValidateFormat(format); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:            err.Error(),
			SupportedFormats: h.validator.SupportedFormats(),
		})
		return
	}

	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{Error: "the parameter amount must be a number"})
		return
	}

	adapter, ok := export.New(format)
	if !ok {
		// Unreachable when the validator and the factory agree on formats.
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:            fmt.Sprintf("%q: no export adapter available", format),
			SupportedFormats: h.validator.SupportedFormats(),
		})
		return
	}

	result, err := h.service.ConvertAmount(r.Context(), from, to, amount)
	if err != nil {
		h.writeServiceError(w, err, "ConvertAndDownload")
		return
	}

	adapter.Open()
	if err = adapter.WriteHeader(downloadHeader); err != nil {
		h.writeExportError(w, err, format)
		return
	}
	content := []string{
		result.From,
		result.To,
		result.OriginalValue.String(),
		result.ConvertedValue.String(),
		result.RatesLastUpdatedAt,
	}
	if err = adapter.WriteContent(content); err != nil {
		h.writeExportError(w, err, format)
		return
	}
	file, err := adapter.Finalize()
	if err != nil {
		h.writeExportError(w, err, format)
		return
	}

	w.Header().Set("Content-Type", file.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Bytes)
}

func (h *Handler) writeExportError(w http.ResponseWriter, err error, format string) {
	msg := "failed to build the export file"
	logrus.WithError(err).WithFields(logrus.Fields{"handler": "ConvertAndDownload", "type": format}).Error(msg)
	writeError(w, http.StatusInternalServerError, errorResponse{Error: msg})
}
