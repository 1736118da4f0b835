package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/splcricket/auction-bot/internal/bot"
	"github.com/splcricket/auction-bot/internal/config"
	"github.com/splcricket/auction-bot/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal("Failed to load configuration: ", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx := context.Background()
	b, err := bot.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to create bot: ", err)
	}

	if err := b.Start(ctx); err != nil {
		log.Fatal("Failed to start bot: ", err)
	}

	log.Info("Auction bot is running. Press CTRL+C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Info("Shutting down...")
	if err := b.Stop(); err != nil {
		log.Error("Error during shutdown: ", err)
	}
}
