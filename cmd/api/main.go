package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"storefront-checkout/internal/clients"
	"storefront-checkout/internal/config"
	"storefront-checkout/internal/modules/notification"
	"storefront-checkout/internal/modules/payment"
	"storefront-checkout/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("level=warn msg=failed to load .env err=%v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	loggerf := log.Printf

	if !cfg.Razorpay.Configured() {
		log.Printf("level=warn msg=razorpay credentials missing; payment endpoints will report a configuration error")
	}
	gateway := clients.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, loggerf)
	paymentService := payment.NewService(gateway, payment.Config{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
	}, loggerf)

	notificationCfg := notification.Config{FromName: cfg.Email.FromName}
	if cfg.Email.Configured() {
		notificationCfg.Mailbox = cfg.Email.User
	} else {
		log.Printf("level=warn msg=email credentials missing; confirmation emails will report a configuration error")
	}
	mailer := clients.NewSMTPMailer(clients.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.User,
		Password: cfg.Email.Password,
	}, loggerf)
	notificationService := notification.NewService(mailer, notificationCfg, loggerf)

	router := server.NewRouter(cfg, server.Handlers{
		Payment:      payment.NewHandler(paymentService, loggerf),
		Notification: notification.NewHandler(notificationService, loggerf),
	}, server.NewRegistry())

	srv := server.New(cfg, router)

	go func() {
		log.Printf("level=info msg=server starting addr=%s env=%s", cfg.Server.Addr(), cfg.AppEnv)
		if err := srv.Start(); err != nil {
			log.Fatalf("level=error msg=server failed err=%v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("level=info msg=shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("level=error msg=server forced to shutdown err=%v", err)
	}

	log.Printf("level=info msg=server exited")
}
