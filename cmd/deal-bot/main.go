package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-deal-bot/internal/config"
	"github.com/LavaJover/shvark-deal-bot/internal/delivery/discord"
	httpdelivery "github.com/LavaJover/shvark-deal-bot/internal/delivery/http"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/chain"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-deal-bot/internal/infrastructure/rates"
	"github.com/LavaJover/shvark-deal-bot/internal/usecase"
	"github.com/joho/godotenv"
)

const ratesRefreshPeriod = 5 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		if err := migrate.RunMigrations(db, path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)

	// Init chain gateway
	chainGateway := chain.MustInitGateway(cfg)
	// Init price feed
	priceFeed := rates.NewCoinGeckoProvider()

	// Init repos
	ticketRepo := repository.NewDefaultTicketRepository(db)
	applicationRepo := repository.NewDefaultApplicationRepository(db)
	reportRepo := repository.NewDefaultReportRepository(db)
	walletRepo := repository.NewDefaultWalletRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)

	// Init usecases
	ticketUsecase := usecase.NewDefaultTicketUsecase(ticketRepo, pub)
	applicationUsecase := usecase.NewDefaultApplicationUsecase(applicationRepo)
	reportUsecase := usecase.NewDefaultReportUsecase(reportRepo, pub)
	walletUsecase := usecase.NewDefaultWalletUsecase(walletRepo)
	paymentUsecase := usecase.NewDefaultPaymentUsecase(paymentRepo, pub)

	// Init metrics
	dealMetrics := metrics.NewDealMetrics()

	// Init discord gateway and bot
	gateway, err := discord.NewDiscordgoGateway(cfg.Discord.BotToken)
	if err != nil {
		log.Fatalf("failed to init discord gateway: %v", err)
	}
	bot := discord.NewBot(
		cfg,
		gateway,
		discord.NewDispatcher(),
		ticketUsecase,
		applicationUsecase,
		reportUsecase,
		walletUsecase,
		paymentUsecase,
		chainGateway,
		priceFeed,
		dealMetrics,
	)
	if err := gateway.Run(bot); err != nil {
		log.Fatalf("failed to connect to discord: %v", err)
	}
	defer gateway.Close()

	// HTTP server: oauth callback, healthz, metrics
	router := httpdelivery.NewRouter(cfg)
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
		slog.Info("http server listening", "addr", addr)
		if err := router.Run(addr); err != nil {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	// Периодический прогрев цен, чтобы панель эскроу не ждала CoinGecko
	go func() {
		ticker := time.NewTicker(ratesRefreshPeriod)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			prices, err := priceFeed.GetPrices(ctx)
			cancel()
			if err != nil {
				slog.Error("rates refresh failed", "error", err.Error())
				continue
			}
			slog.Info("rates refreshed", "assets", len(prices))
		}
	}()

	slog.Info("deal bot is running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
}
