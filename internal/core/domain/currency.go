package domain

import (
	"errors"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MaxCurrencyFieldLength is the upper bound for every Currency text field.
const MaxCurrencyFieldLength = 128

// Currency represents a currency in the catalog.
type Currency struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"required,max=128"`   // e.g., "US Dollar"
	Symbol string `json:"symbol" validate:"required,max=128"` // e.g., "$"
	Code   string `json:"code" validate:"required,max=128"`   // e.g., "USD"
	AuditFields
}

// Validate checks that name, symbol and code are non-empty and at most 128 characters.
func (c Currency) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: currency %s must be between 1 and %d characters",
			apperrors.ErrValidation, fe.Field(), MaxCurrencyFieldLength)
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}
