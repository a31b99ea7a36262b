package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sergeii/practikum-go-bankconsole/internal/core/accounts"
)

// Repository keeps the balance of the single session account in process memory.
// Nothing is persisted, the account is gone once the process exits
type Repository struct {
	account accounts.Account
	mu      sync.Mutex
}

func New() *Repository {
	return &Repository{
		account: accounts.New(),
	}
}

func (r *Repository) Get(ctx context.Context) (accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.account, nil
}

// Deposit adds a positive amount to the balance
func (r *Repository) Deposit(ctx context.Context, amount decimal.Decimal) (accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if amount.LessThanOrEqual(decimal.Zero) {
		return accounts.Blank, accounts.ErrInvalidAmount
	}
	before := r.account.Balance
	r.account.Balance = before.Add(amount)
	log.Info().
		Stringer("amount", amount).
		Stringer("before", before).
		Stringer("after", r.account.Balance).
		Msg("Amount deposited")
	return r.account, nil
}

// Withdraw deducts the amount from the balance.
// The checks are made in a fixed order: an amount within (0, balance] is withdrawn,
// an amount exceeding the balance is insufficient, anything else is invalid.
// Hence zero and negative amounts always end up as ErrInvalidAmount
func (r *Repository) Withdraw(ctx context.Context, amount decimal.Decimal) (accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	before := r.account.Balance
	switch {
	case amount.GreaterThan(decimal.Zero) && amount.LessThanOrEqual(before):
		r.account.Balance = before.Sub(amount)
		log.Info().
			Stringer("amount", amount).
			Stringer("before", before).
			Stringer("after", r.account.Balance).
			Msg("Amount withdrawn")
		return r.account, nil
	case amount.GreaterThan(before):
		return accounts.Blank, accounts.ErrInsufficientFunds
	default:
		return accounts.Blank, accounts.ErrInvalidAmount
	}
}
