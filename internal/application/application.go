package application

import (
	"github.com/sergeii/practikum-go-bankconsole/cmd/bankconsole/config"
	"github.com/sergeii/practikum-go-bankconsole/internal/services/account"
)

type App struct {
	AccountService account.Service
	Cfg            config.Config
}

func NewApp(cfg config.Config, accountService account.Service) *App {
	return &App{
		Cfg:            cfg,
		AccountService: accountService,
	}
}
