package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/sizzilia/storefront/internal/config"
	"github.com/sizzilia/storefront/internal/httpserver"
	"github.com/sizzilia/storefront/internal/mail"
	"github.com/sizzilia/storefront/internal/repo"
	"github.com/sizzilia/storefront/internal/service"
	"github.com/sizzilia/storefront/pkg/logging"
	loggingmw "github.com/sizzilia/storefront/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.MongoURI, "MONGO_URI")
	config.MustNonEmpty(cfg.EmailUser, "EMAIL_USER")
	config.MustNonEmpty(cfg.RecipientEmail, "RECIPIENT_EMAIL")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, db, err := repo.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		log.Fatalf("mongo open: %v", err)
	}

	sender := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword)

	catalogSvc := &service.CatalogService{Repo: repo.NewMongoProductRepo(db)}
	orderSvc := &service.OrderService{Mail: sender, FromAddr: cfg.EmailUser, AdminAddr: cfg.RecipientEmail}
	contactSvc := &service.ContactService{Mail: sender, FromAddr: cfg.EmailUser, RecipientAddr: cfg.RecipientEmail}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc},
		ContactHandler: &httpserver.ContactHTTP{Svc: contactSvc},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("storefront listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = client.Disconnect(shutdownCtx)

	log.Println("storefront stopped")
}
