package account

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sergeii/practikum-go-bankconsole/internal/core/accounts"
)

type Service struct {
	accounts accounts.Repository
}

// Withdrawal describes a successful withdrawal.
// LowBalance is set when the remaining balance is positive but below the low balance limit
type Withdrawal struct {
	Sum        decimal.Decimal
	Account    accounts.Account
	LowBalance bool
}

func New(repo accounts.Repository) Service {
	return Service{
		accounts: repo,
	}
}

// Deposit puts specified amount on the account.
// Only positive amounts are accepted, accounts.ErrInvalidAmount is returned otherwise
func (s Service) Deposit(ctx context.Context, amount decimal.Decimal) (accounts.Account, error) {
	a, err := s.accounts.Deposit(ctx, amount)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidAmount) {
			log.Warn().Err(err).Stringer("amount", amount).Msg("Refusing to deposit non-positive amount")
		}
		return accounts.Blank, err
	}
	return a, nil
}

// Withdraw attempts to take specified amount from the account.
// A withdrawal succeeds only when the amount is positive and does not exceed the current balance.
// Exceeding the balance results in accounts.ErrInsufficientFunds,
// any other rejected amount results in accounts.ErrInvalidAmount
func (s Service) Withdraw(ctx context.Context, amount decimal.Decimal) (Withdrawal, error) {
	a, err := s.accounts.Withdraw(ctx, amount)
	if err != nil {
		log.Warn().Err(err).Stringer("amount", amount).Msg("Unable to withdraw requested amount")
		return Withdrawal{}, err
	}
	w := Withdrawal{
		Sum:        amount,
		Account:    a,
		LowBalance: accounts.IsLow(a.Balance),
	}
	if w.LowBalance {
		log.Info().Stringer("balance", a.Balance).Msg("Balance is getting low")
	}
	return w, nil
}

// GetBalance returns the current state of the account
func (s Service) GetBalance(ctx context.Context) (accounts.Account, error) {
	return s.accounts.Get(ctx)
}
