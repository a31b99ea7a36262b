package bootstrap

import (
	"github.com/sergeii/practikum-go-bankconsole/cmd/bankconsole/config"
	"github.com/sergeii/practikum-go-bankconsole/internal/application"
	"github.com/sergeii/practikum-go-bankconsole/internal/core/accounts/memory"
	"github.com/sergeii/practikum-go-bankconsole/internal/services/account"
)

func App(cfg config.Config) *application.App {
	// the session account lives in memory only
	accounts := memory.New()
	return application.NewApp(cfg, account.New(accounts))
}
