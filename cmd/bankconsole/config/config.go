package config

type Config struct {
	Currency  string `env:"BANK_CURRENCY" envDefault:"₹" validate:"required"`
	Pause     bool   `env:"BANK_PAUSE" envDefault:"true"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"error" validate:"required"`
	LogOutput string `env:"LOG_OUTPUT" envDefault:"console" validate:"oneof=console stderr json"`
}
