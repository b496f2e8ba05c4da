package main

import (
	stdLog "log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bookswap/exchange-service/app"
	"github.com/bookswap/exchange-service/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		// streaming subscriptions keep the response open
		config.WithWriteTimeout(0),
	)

	app.Run(cfg)
}
