package apperrors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrNoUsableTables      = errors.New("dataset contains no usable tables")
	ErrMissingCredentials  = errors.New("missing reasoning service credentials")
	ErrNoProviderAvailable = errors.New("no reasoning provider available")
)
