package encode

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountIsEmpty    = errors.New("amount is empty")
	ErrAmountIsNotPlain = errors.New("amount must be written as digits with an optional sign and fraction")
)

// exponent notation is refused, 1e200000000 would have to be expanded to a number of that many digits
var plainAmount = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)$`) // nolint: gochecknoglobals

// Money renders an amount with the currency symbol and two decimal places, e.g. ₹12.50
func Money(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}

// ParseAmount reads a decimal amount from user input.
// Surrounding whitespace is ignored
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrAmountIsEmpty
	}
	if !plainAmount.MatchString(s) {
		return decimal.Zero, ErrAmountIsNotPlain
	}
	return decimal.NewFromString(s)
}
