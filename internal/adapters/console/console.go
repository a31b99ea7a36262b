package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/sergeii/practikum-go-bankconsole/internal/application"
)

var ErrInvalidMenuChoice = errors.New("invalid menu choice")
var ErrInputClosed = errors.New("input is closed")

type Choice int

const (
	ChoiceDeposit Choice = iota + 1
	ChoiceWithdraw
	ChoiceBalance
	ChoiceExit
)

type Console struct {
	app      *application.App
	in       *bufio.Reader
	out      io.Writer
	currency string
	pause    bool
}

type Option func(c *Console)

func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.in = bufio.NewReader(r)
	}
}

func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

func WithCurrency(symbol string) Option {
	return func(c *Console) {
		c.currency = symbol
	}
}

func WithPause(pause bool) Option {
	return func(c *Console) {
		c.pause = pause
	}
}

// New configures a console session on top of the app.
// Unless overridden with options, the session talks to stdin/stdout
// and uses the currency and pause settings from the app config
func New(app *application.App, opts ...Option) *Console {
	c := &Console{
		app:      app,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		currency: app.Cfg.Currency,
		pause:    app.Cfg.Pause,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives the menu loop until the user picks the exit option.
// Invalid input of any kind is reported to the user and the loop goes on.
// ErrInputClosed is returned if the input ends before the user exits
func (c *Console) Run(ctx context.Context) error {
	c.printBanner()
	for {
		c.printMenu()
		line, err := c.prompt("Enter your choice (1-4): ")
		if err != nil {
			return err
		}

		choice, err := parseChoice(line)
		if err != nil {
			log.Debug().Err(err).Str("input", line).Msg("Unable to accept menu choice")
			c.println()
			c.println("❌ Invalid choice! Please select from options 1-4.")
		} else {
			if choice == ChoiceExit {
				c.printFarewell()
				log.Info().Msg("Session finished by user")
				return nil
			}
			if err = c.dispatch(ctx, choice); err != nil {
				return err
			}
		}

		if err = c.waitForEnter(); err != nil {
			return err
		}
	}
}

func (c *Console) dispatch(ctx context.Context, choice Choice) error {
	switch choice {
	case ChoiceDeposit:
		return c.deposit(ctx)
	case ChoiceWithdraw:
		return c.withdraw(ctx)
	case ChoiceBalance:
		return c.showBalance(ctx)
	}
	return nil
}

func parseChoice(line string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, ErrInvalidMenuChoice
	}
	choice := Choice(n)
	if choice < ChoiceDeposit || choice > ChoiceExit {
		return 0, ErrInvalidMenuChoice
	}
	return choice, nil
}

// prompt writes the text without a line break and reads the user's answer
func (c *Console) prompt(text string) (string, error) {
	c.printf("%s", text)
	return c.readLine()
}

// waitForEnter blocks until the user acknowledges the result of the last action
func (c *Console) waitForEnter() error {
	if !c.pause {
		return nil
	}
	c.println()
	c.printf("Press Enter to continue...")
	_, err := c.readLine()
	return err
}

// readLine returns the next line of input without the line break.
// Lines of any length are accepted, the last line may lack a line break
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Error().Err(err).Msg("Failed to read user input")
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...) // nolint: errcheck
}

func (c *Console) println(lines ...string) {
	if len(lines) == 0 {
		fmt.Fprintln(c.out) // nolint: errcheck
		return
	}
	for _, line := range lines {
		fmt.Fprintln(c.out, line) // nolint: errcheck
	}
}
