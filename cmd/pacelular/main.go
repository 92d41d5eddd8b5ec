package main

import (
	"github.com/wkdev/pacelular-backend/internal/app"
	"github.com/wkdev/pacelular-backend/internal/config"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	var log *zap.Logger
	if cfg.Env == "dev" {
		log, _ = zap.NewDevelopment()
	} else {
		log, _ = zap.NewProduction()
	}
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	log.Info("starting server", zap.String("addr", cfg.HTTPServer.Address))

	application.MustRun()
}
