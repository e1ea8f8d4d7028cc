package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a price is created without a currency code.
const DefaultCurrency = "USD"

// Price is a non-negative monetary amount in a single currency.
// The zero value is not valid; use NewPrice.
type Price struct {
	amount   decimal.Decimal
	currency string
}

// NewPrice creates a Price. An empty currency defaults to USD.
func NewPrice(amount decimal.Decimal, currency string) (Price, error) {
	if amount.IsNegative() {
		return Price{}, NewValidationError("price", "cannot be negative")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return Price{amount: amount, currency: currency}, nil
}

// MustPrice creates a Price from a decimal string and panics on error.
// Intended for constants and tests.
func MustPrice(amount, currency string) Price {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(fmt.Sprintf("invalid price amount %q: %v", amount, err))
	}
	p, err := NewPrice(d, currency)
	if err != nil {
		panic(err)
	}
	return p
}

// Amount returns the decimal amount.
func (p Price) Amount() decimal.Decimal { return p.amount }

// Currency returns the ISO currency code.
func (p Price) Currency() string { return p.currency }

// Add returns the sum of two prices in the same currency.
func (p Price) Add(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, fmt.Errorf("%w: cannot add %s to %s", ErrInvalidArgument, other.currency, p.currency)
	}
	return Price{amount: p.amount.Add(other.amount), currency: p.currency}, nil
}

// GreaterThan reports whether p is strictly greater than other.
func (p Price) GreaterThan(other Price) (bool, error) {
	if p.currency != other.currency {
		return false, fmt.Errorf("%w: cannot compare %s with %s", ErrInvalidArgument, p.currency, other.currency)
	}
	return p.amount.GreaterThan(other.amount), nil
}

// Multiply scales the amount by factor, keeping the currency.
func (p Price) Multiply(factor decimal.Decimal) Price {
	return Price{amount: p.amount.Mul(factor), currency: p.currency}
}

// Equal reports whether both prices have the same currency and numeric amount.
func (p Price) Equal(other Price) bool {
	return p.currency == other.currency && p.amount.Equal(other.amount)
}

func (p Price) String() string {
	return p.amount.StringFixed(2) + " " + p.currency
}
