package console

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/sergeii/practikum-go-bankconsole/internal/core/accounts"
	"github.com/sergeii/practikum-go-bankconsole/pkg/encode"
)

var statusLines = map[accounts.Status]string{ // nolint: gochecknoglobals
	accounts.StatusEmpty:    "Status: Account is empty",
	accounts.StatusLow:      "Status: Low balance",
	accounts.StatusModerate: "Status: Moderate balance",
	accounts.StatusGood:     "Status: Good balance",
}

const msgInvalidAmount = "❌ Invalid amount! Please enter positive value."

func (c *Console) deposit(ctx context.Context) error {
	a, err := c.app.AccountService.GetBalance(ctx)
	if err != nil {
		return err
	}
	c.println()
	c.println("--- DEPOSIT TRANSACTION ---")
	c.printf("Current Balance: %s\n", c.money(a))

	line, err := c.prompt("Enter amount to deposit: " + c.currency)
	if err != nil {
		return err
	}
	amount, err := encode.ParseAmount(line)
	if err != nil {
		log.Debug().Err(err).Str("input", line).Msg("Unable to parse deposit amount")
		c.println(msgInvalidAmount)
		return nil
	}

	a, err = c.app.AccountService.Deposit(ctx, amount)
	switch {
	case err == nil:
		c.printf("✅ Successfully deposited %s\n", encode.Money(c.currency, amount))
		c.printf("New Balance: %s\n", c.money(a))
	case errors.Is(err, accounts.ErrInvalidAmount):
		c.println(msgInvalidAmount)
	default:
		return err
	}
	return nil
}

func (c *Console) withdraw(ctx context.Context) error {
	a, err := c.app.AccountService.GetBalance(ctx)
	if err != nil {
		return err
	}
	c.println()
	c.println("--- WITHDRAWAL TRANSACTION ---")
	c.printf("Current Balance: %s\n", c.money(a))

	line, err := c.prompt("Enter amount to withdraw: " + c.currency)
	if err != nil {
		return err
	}
	amount, err := encode.ParseAmount(line)
	if err != nil {
		log.Debug().Err(err).Str("input", line).Msg("Unable to parse withdrawal amount")
		c.println(msgInvalidAmount)
		return nil
	}

	w, err := c.app.AccountService.Withdraw(ctx, amount)
	switch {
	case err == nil:
		c.printf("✅ Successfully withdrawn %s\n", encode.Money(c.currency, w.Sum))
		c.printf("Remaining Balance: %s\n", c.money(w.Account))
		if w.LowBalance {
			c.println("⚠️  Warning: Your balance is getting low!")
		}
	case errors.Is(err, accounts.ErrInsufficientFunds):
		c.println("❌ Insufficient balance!")
		c.printf("Available Balance: %s\n", c.money(a))
	case errors.Is(err, accounts.ErrInvalidAmount):
		c.println(msgInvalidAmount)
	default:
		return err
	}
	return nil
}

func (c *Console) showBalance(ctx context.Context) error {
	a, err := c.app.AccountService.GetBalance(ctx)
	if err != nil {
		return err
	}
	c.println()
	c.println("--- ACCOUNT BALANCE ---")
	c.printf("Current Balance: %s\n", c.money(a))
	c.println(statusLines[a.Status()])
	return nil
}

func (c *Console) money(a accounts.Account) string {
	return encode.Money(c.currency, a.Balance)
}
