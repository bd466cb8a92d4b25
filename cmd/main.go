package main

import (
	"log"

	"github.com/dragosdragos935/Italia-Word-Quiz/internal/bot"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/client"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/config"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/repository"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/service"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/storage/cache"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/storage/db"
	"github.com/dragosdragos935/Italia-Word-Quiz/internal/storage/kv"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	store := kv.NewStore(db)
	repos := repository.NewRepository(store)

	clients := client.InitClients()
	services := service.InitServices(clients, repos, cfg.Quiz, logger)
	cache := cache.NewCache()

	handler, err := bot.NewTelegramAPI(*cfg, services, cache)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
