package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/practikum-go-bankconsole/cmd/bankconsole/config"
	"github.com/sergeii/practikum-go-bankconsole/internal/adapters/console"
	"github.com/sergeii/practikum-go-bankconsole/internal/application"
	"github.com/sergeii/practikum-go-bankconsole/internal/core/accounts/memory"
	"github.com/sergeii/practikum-go-bankconsole/internal/services/account"
)

func newApp() *application.App {
	cfg := config.Config{Currency: "₹", Pause: true}
	return application.NewApp(cfg, account.New(memory.New()))
}

func runSession(t *testing.T, input string, opts ...console.Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]console.Option{console.WithInput(strings.NewReader(input)), console.WithOutput(&out)}, opts...)
	c := console.New(newApp(), opts...)
	err := c.Run(context.TODO())
	return out.String(), err
}

func TestConsole_Run_ExitImmediately(t *testing.T) {
	out, err := runSession(t, "4\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "╔══"))
	assert.Contains(t, out, "║        Bank Management System        ║")
	assert.Contains(t, out, "│ 4. 🚪 Exit System               │")
	assert.Contains(t, out, "Enter your choice (1-4): ")
	assert.Contains(t, out, "Thank you for using our Bank Management System!\nHave a great day!\n")
	assert.NotContains(t, out, "Press Enter to continue...")
	assert.Equal(t, 1, strings.Count(out, "MAIN MENU"))
}

func TestConsole_Run_Scenario(t *testing.T) {
	input := strings.Join([]string{
		"1", "500", "",
		"3", "",
		"2", "450", "",
		"3", "",
		"2", "100", "",
		"3", "",
		"4",
	}, "\n") + "\n"
	out, err := runSession(t, input)
	require.NoError(t, err)

	assert.Contains(t, out, "--- DEPOSIT TRANSACTION ---\nCurrent Balance: ₹0.00\nEnter amount to deposit: ₹")
	assert.Contains(t, out, "✅ Successfully deposited ₹500.00\nNew Balance: ₹500.00\n")
	assert.Contains(t, out, "Current Balance: ₹500.00\nStatus: Moderate balance\n")
	assert.Contains(t, out,
		"✅ Successfully withdrawn ₹450.00\nRemaining Balance: ₹50.00\n⚠️  Warning: Your balance is getting low!\n",
	)
	assert.Contains(t, out, "Current Balance: ₹50.00\nStatus: Low balance\n")
	assert.Contains(t, out, "❌ Insufficient balance!\nAvailable Balance: ₹50.00\n")
	assert.Equal(t, 2, strings.Count(out, "Status: Low balance"))
	assert.Equal(t, 6, strings.Count(out, "Press Enter to continue..."))
	assert.True(t, strings.HasSuffix(out, "Have a great day!\n══════════════════════════════════════════\n"))
}

func TestConsole_Run_RejectedDeposit(t *testing.T) {
	out, err := runSession(t, "1\n-5\n\n3\n\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ Invalid amount! Please enter positive value.\n")
	assert.NotContains(t, out, "Successfully deposited")
	assert.Contains(t, out, "Current Balance: ₹0.00\nStatus: Account is empty\n")
}

func TestConsole_Run_WithdrawWholeBalance(t *testing.T) {
	out, err := runSession(t, "1\n1200.5\n\n3\n\n2\n1200.5\n\n3\n\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: Good balance\n")
	assert.Contains(t, out, "✅ Successfully withdrawn ₹1200.50\nRemaining Balance: ₹0.00\n")
	assert.NotContains(t, out, "Warning: Your balance is getting low!")
	assert.Contains(t, out, "Status: Account is empty\n")
}

func TestConsole_Run_InvalidWithdrawals(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero amount", "0", "❌ Invalid amount! Please enter positive value.\n"},
		{"negative amount", "-20", "❌ Invalid amount! Please enter positive value.\n"},
		{"not a number", "lots", "❌ Invalid amount! Please enter positive value.\n"},
		{"empty amount", "", "❌ Invalid amount! Please enter positive value.\n"},
		{"huge exponent", "1e200000000", "❌ Invalid amount! Please enter positive value.\n"},
		{"tiny exponent", "1e-2000000000", "❌ Invalid amount! Please enter positive value.\n"},
		{"very long line", strings.Repeat("7", 70000), "❌ Insufficient balance!\nAvailable Balance: ₹10.00\n"},
		{"more than balance", "10.01", "❌ Insufficient balance!\nAvailable Balance: ₹10.00\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSession(t, "1\n10\n\n2\n"+tt.amount+"\n\n3\n\n4\n")
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Successfully withdrawn")
			assert.Contains(t, out, "Current Balance: ₹10.00\nStatus: Low balance\n")
		})
	}
}

func TestConsole_Run_InvalidChoice(t *testing.T) {
	tests := []struct {
		name   string
		choice string
	}{
		{"zero", "0"},
		{"out of range", "5"},
		{"negative", "-1"},
		{"not a number", "deposit"},
		{"empty line", ""},
		{"number with garbage", "2x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSession(t, tt.choice+"\n\n4\n")
			require.NoError(t, err)
			assert.Contains(t, out, "\n❌ Invalid choice! Please select from options 1-4.\n\nPress Enter to continue...")
			assert.Equal(t, 2, strings.Count(out, "MAIN MENU"))
			assert.Contains(t, out, "Have a great day!")
		})
	}
}

func TestConsole_Run_ChoiceWithWhitespace(t *testing.T) {
	out, err := runSession(t, " 3 \n\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "--- ACCOUNT BALANCE ---")
}

func TestConsole_Run_WithoutPause(t *testing.T) {
	out, err := runSession(t, "1\n150\n3\n4\n", console.WithPause(false))
	require.NoError(t, err)
	assert.NotContains(t, out, "Press Enter to continue...")
	assert.Contains(t, out, "Current Balance: ₹150.00\nStatus: Moderate balance\n")
}

func TestConsole_Run_CustomCurrency(t *testing.T) {
	out, err := runSession(t, "1\n25\n\n4\n", console.WithCurrency("$"))
	require.NoError(t, err)
	assert.Contains(t, out, "Enter amount to deposit: $")
	assert.Contains(t, out, "✅ Successfully deposited $25.00\nNew Balance: $25.00\n")
}

func TestConsole_Run_InputClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no input at all", ""},
		{"closed at amount prompt", "1\n"},
		{"closed while paused", "3\n"},
		{"closed at menu", "3\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSession(t, tt.input)
			require.ErrorIs(t, err, console.ErrInputClosed)
			assert.NotContains(t, out, "Have a great day!")
		})
	}
}

type failingReader struct{}

var errBrokenPipe = errors.New("broken pipe")

func (failingReader) Read([]byte) (int, error) {
	return 0, errBrokenPipe
}

func TestConsole_Run_InputFailure(t *testing.T) {
	var out bytes.Buffer
	c := console.New(newApp(), console.WithInput(failingReader{}), console.WithOutput(&out))
	err := c.Run(context.TODO())
	require.ErrorIs(t, err, errBrokenPipe)
	assert.NotErrorIs(t, err, console.ErrInputClosed)
}

func TestConsole_Run_LongChoiceLine(t *testing.T) {
	out, err := runSession(t, strings.Repeat("x", 70000)+"\n\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "❌ Invalid choice! Please select from options 1-4.")
	assert.Contains(t, out, "Have a great day!")
}

func TestConsole_Run_InvalidDeposits(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"huge exponent", "1e200000000"},
		{"tiny exponent", "1e-2000000000"},
		{"very long garbage", strings.Repeat("x", 70000)},
		{"negative amount", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runSession(t, "1\n"+tt.amount+"\n\n3\n\n4\n")
			require.NoError(t, err)
			assert.Contains(t, out, "❌ Invalid amount! Please enter positive value.\n")
			assert.NotContains(t, out, "Successfully deposited")
			assert.Contains(t, out, "Current Balance: ₹0.00\nStatus: Account is empty\n")
		})
	}
}

func TestConsole_Run_SubCentDeposit(t *testing.T) {
	// the balance is shown rounded to cents, the status uses the exact value
	out, err := runSession(t, "1\n0.001\n\n3\n\n4\n")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Successfully deposited ₹0.00\nNew Balance: ₹0.00\n")
	assert.Contains(t, out, "Current Balance: ₹0.00\nStatus: Low balance\n")
}

func TestConsole_Run_LastLineWithoutBreak(t *testing.T) {
	out, err := runSession(t, "3\n\n4")
	require.NoError(t, err)
	assert.Contains(t, out, "Have a great day!")
}

func TestConsole_Run_WindowsLineBreaks(t *testing.T) {
	out, err := runSession(t, "1\r\n25\r\n\r\n4\r\n")
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Successfully deposited ₹25.00\n")
}
