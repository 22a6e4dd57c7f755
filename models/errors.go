package models

import (
	"errors"
	"fmt"
)

// Error kinds the HTTP layer maps onto status codes. Validation errors all
// wrap ErrValidation so their messages stay safe to return to the client.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("record not found")
	ErrBadCredentials    = errors.New("invalid username or password")
	ErrAuthNotConfigured = errors.New("login credentials are not configured")
)

var (
	ErrEmptyDescription = fmt.Errorf("%w: description must not be empty", ErrValidation)
	ErrEmptyCategory    = fmt.Errorf("%w: category must not be empty", ErrValidation)
	ErrEmptySource      = fmt.Errorf("%w: source must not be empty", ErrValidation)
	ErrEmptyName        = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrMissingAmount    = fmt.Errorf("%w: amount is required", ErrValidation)
	ErrNegativeAmount   = fmt.Errorf("%w: amount must not be negative", ErrValidation)
	ErrMissingQuantity  = fmt.Errorf("%w: quantity is required", ErrValidation)
	ErrNegativeQuantity = fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	ErrMissingPrice     = fmt.Errorf("%w: cost_price and selling_price are required", ErrValidation)
	ErrNegativePrice    = fmt.Errorf("%w: prices must not be negative", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: date is required", ErrValidation)
)
