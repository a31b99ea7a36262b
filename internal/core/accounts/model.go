package accounts

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusEmpty    Status = "empty"
	StatusLow      Status = "low"
	StatusModerate Status = "moderate"
	StatusGood     Status = "good"
)

var (
	LowBalanceLimit  = decimal.NewFromInt(100)  // nolint: gochecknoglobals
	GoodBalanceLimit = decimal.NewFromInt(1000) // nolint: gochecknoglobals
)

type Account struct {
	Balance  decimal.Decimal
	OpenedAt time.Time
}

var Blank Account // nolint: gochecknoglobals

func New() Account {
	return Account{
		Balance:  decimal.Zero,
		OpenedAt: time.Now(),
	}
}

func NewFromRepo(balance decimal.Decimal, openedAt time.Time) Account {
	return Account{
		Balance:  balance,
		OpenedAt: openedAt,
	}
}

func (a Account) Status() Status {
	return StatusOf(a.Balance)
}

// StatusOf classifies a balance.
// A balance is only considered empty when it is exactly zero
func StatusOf(balance decimal.Decimal) Status {
	switch {
	case balance.Equal(decimal.Zero):
		return StatusEmpty
	case balance.LessThan(LowBalanceLimit):
		return StatusLow
	case balance.LessThan(GoodBalanceLimit):
		return StatusModerate
	default:
		return StatusGood
	}
}

// IsLow tells whether the balance is positive but below the low balance limit
func IsLow(balance decimal.Decimal) bool {
	return balance.GreaterThan(decimal.Zero) && balance.LessThan(LowBalanceLimit)
}
