// Package rules holds the pure checks applied to draft input before it may
// enter the list.
package rules

import (
	"math"
	"strings"

	"foodlist-cli/internal/model"

	"github.com/shopspring/decimal"
)

func ValidateName(text string) error {
	if strings.TrimSpace(text) == "" {
		return newValidationError(ErrEmptyName, "Please enter a valid food item.")
	}
	return nil
}

func ValidatePrice(text string) error {
	_, err := ParsePrice(text)
	return err
}

// Exponent bounds for a price. Above maxPriceExp every nonzero value is past
// the float64 range; below minPriceExp a price carries more fractional digits
// than a float64 can tell apart.
const (
	maxPriceExp = 308
	minPriceExp = -324
)

// ParsePrice parses decimal text such as "12.50" or "-3". Surrounding
// whitespace is ignored; anything else that is not a finite decimal fails,
// including exponent forms like "1e400" that overflow a float64.
func ParsePrice(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, invalidPrice()
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalidPrice()
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if exp := d.Exponent(); exp > maxPriceExp || exp < minPriceExp {
		return decimal.Zero, invalidPrice()
	}
	if f, _ := d.Float64(); math.IsInf(f, 0) {
		return decimal.Zero, invalidPrice()
	}
	return d, nil
}

func invalidPrice() error {
	return newValidationError(ErrInvalidPrice, "Please enter a valid price.")
}

// ParseEntry runs both checks, name first, and returns the first failure.
// The returned entry carries the trimmed name.
func ParseEntry(nameText, priceText string) (model.Entry, error) {
	if err := ValidateName(nameText); err != nil {
		return model.Entry{}, err
	}
	price, err := ParsePrice(priceText)
	if err != nil {
		return model.Entry{}, err
	}
	return model.Entry{Name: strings.TrimSpace(nameText), Price: price}, nil
}
