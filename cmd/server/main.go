// Command server runs the marketplace HTTP API.
//
// @title           TradeConnect Marketplace API
// @version         1.0
// @description     Multi-tenant marketplace backend: company and customer accounts, product catalog and inquiries.
//
// @securityDefinitions.apikey BearerAuth
// @in     header
// @name   Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/tradeconnect/marketplace-api/docs"
	"github.com/tradeconnect/marketplace-api/internal/api"
	"github.com/tradeconnect/marketplace-api/internal/infrastructure/config"
	mongostore "github.com/tradeconnect/marketplace-api/internal/infrastructure/db/mongo"
	redisstore "github.com/tradeconnect/marketplace-api/internal/infrastructure/db/redis"
	"github.com/tradeconnect/marketplace-api/internal/infrastructure/email"
	"github.com/tradeconnect/marketplace-api/internal/infrastructure/queue"
	"github.com/tradeconnect/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb indexes")
	}

	// --- Redis ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection")
	}
	defer rdb.Close()

	// --- Outbound mail ---
	mailer, err := email.NewSMTPMailer(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		From:     cfg.SMTP.Mail,
		Password: cfg.SMTP.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("smtp client")
	}

	dispatcher := queue.NewDispatcher(0, mailer, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, mailer, dispatcher, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
		os.Exit(1)
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongostore.NewCompanyRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongostore.NewCustomerRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongostore.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongostore.NewInquiryRepository(db).EnsureIndexes(ctx)
}
