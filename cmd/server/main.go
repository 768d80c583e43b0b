package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/avoronkov/catalog-api/internal/config"
	"github.com/avoronkov/catalog-api/internal/db"
	"github.com/avoronkov/catalog-api/internal/es"
	"github.com/avoronkov/catalog-api/internal/httpserver"
	"github.com/avoronkov/catalog-api/internal/logging"
	"github.com/avoronkov/catalog-api/internal/middleware/loggingmw"
	"github.com/avoronkov/catalog-api/internal/mykafka"
	"github.com/avoronkov/catalog-api/internal/repo"
	"github.com/avoronkov/catalog-api/internal/search"
	"github.com/avoronkov/catalog-api/internal/service"
	"github.com/avoronkov/catalog-api/internal/tokens"
)

const productEventsTopic = "product_events"

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers, productEventsTopic)
	}

	var searchIdx *search.Index
	var searchHandler *httpserver.SearchHTTP
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		searchIdx = &search.Index{ES: esClient, Name: cfg.ESIndex}
		searchHandler = &httpserver.SearchHTTP{Index: searchIdx}
	}

	tokenSvc := &tokens.Service{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}
	store := repo.New(gdb)
	catalogSvc := &service.CatalogService{Repo: store, Events: producer, Index: searchIdx}
	authSvc := &service.AuthService{Repo: store, Tokens: tokenSvc}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		ProductHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		SearchHandler:  searchHandler,
		Tokens:         tokenSvc,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
