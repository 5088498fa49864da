package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"glamping-booking/internal/handler/middleware"
	"glamping-booking/internal/infra/invoice"
	"glamping-booking/internal/infra/notify"
	"glamping-booking/internal/pkg/config"
)

// notifier consumes reservation.confirmed events and mails the customer a
// confirmation with the PDF invoice attached.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)

	if cfg.AMQP.URL == "" {
		logger.Error("AMQP_URL が未設定です")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := notify.NewConfirmationHandler(
		invoice.NewRenderer(cfg.Invoice),
		notify.NewSMTPMailer(cfg.SMTP),
		cfg.Invoice.BusinessName,
	)
	consumer := notify.NewConsumer(cfg.AMQP.URL, cfg.AMQP.Queue, handler)

	logger.Info("🚀 通知ワーカーを起動します", "queue", cfg.AMQP.Queue)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("通知ワーカーが異常終了しました", "error", err)
		os.Exit(1)
	}
	logger.Info("🛑 通知ワーカーを停止しました")
}
