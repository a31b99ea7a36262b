package accounts

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient balance")
)

type Repository interface {
	Get(context.Context) (Account, error)
	Deposit(context.Context, decimal.Decimal) (Account, error)
	Withdraw(context.Context, decimal.Decimal) (Account, error)
}
