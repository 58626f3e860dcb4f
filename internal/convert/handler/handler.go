package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fxconvert/internal/domain"
	"fxconvert/internal/rate"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ConversionService interface {
	ConvertAmount(ctx context.Context, from, to string, amount decimal.Decimal) (*rate.ConversionResult, error)
	ListAllWithValues(ctx context.Context, display string) ([]rate.CurrencyView, error)
}

type Validator interface {
	MissingParams(params []rate.Param) []string
	ValidateCurrencies(codes ...string) error
	ValidateFormat(format string) error
	SupportedCurrencies() []string
	SupportedFormats() []string
}

type Handler struct {
	validator Validator
	service   ConversionService
	display   string
}

// NewConvertHandler builds the handler set. displayCode is the currency the
// listing endpoint annotates every row against.
func NewConvertHandler(validator Validator, service ConversionService, displayCode string) *Handler {
	return &Handler{validator: validator, service: service, display: displayCode}
}

type errorResponse struct {
	Error               string   `json:"error"`
	MissingParams       []string `json:"missingParams,omitempty"`
	SupportedCurrencies []string `json:"supportedCurrencies,omitempty"`
	SupportedFormats    []string `json:"supportedFormats,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, statusCode int, resp errorResponse) {
	writeJSON(w, statusCode, resp)
}

// writeServiceError maps engine/cache failures after validation passed:
// provider trouble is the upstream's fault, anything else is ours.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error, handlerName string) {
	if errors.Is(err, domain.ErrRateProvider) {
		msg := "exchange rates are temporarily unavailable"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": handlerName}).Error(msg)
		writeError(w, http.StatusBadGateway, errorResponse{Error: msg})
		return
	}
	msg := "ups, couldn't convert this time"
	logrus.WithError(err).WithFields(logrus.Fields{"handler": handlerName}).Error(msg)
	writeError(w, http.StatusInternalServerError, errorResponse{Error: msg})
}
