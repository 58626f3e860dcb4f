package domain

import "errors"

var (
	ErrMissingParameter    = errors.New("required parameter is missing")
	ErrUnsupportedCurrency = errors.New("currency not supported")
	ErrUnsupportedFormat   = errors.New("file format not supported")
	ErrUnknownCurrency     = errors.New("currency not found in rate store")
	ErrRateProvider        = errors.New("rate provider request failed")
)
