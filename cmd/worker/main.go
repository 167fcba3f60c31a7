package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/adapters/event"
	"github.com/mahathirrr/portfolio/adapters/mail"
	"github.com/mahathirrr/portfolio/adapters/media_storage"
	"github.com/mahathirrr/portfolio/adapters/scheduler"
	backupUC "github.com/mahathirrr/portfolio/internal/application/usecase/backup"
	contactUC "github.com/mahathirrr/portfolio/internal/application/usecase/contact"
	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/pkg/logger"
	"github.com/mahathirrr/portfolio/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("process", "worker"))
	appLogger.Info("Starting Portfolio Worker...")

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "portfolio-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Scheduled backup
	sched, err := scheduler.New(appLogger)
	if err != nil {
		appLogger.Fatal("cannot init scheduler", err)
	}
	if cfg.Backup.Enabled {
		uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize uploader", err)
		}
		backupUseCase := backupUC.NewBackupUseCase(cfg.DB.DSN, cfg.Backup.Folder, uploader, appLogger)
		err = sched.AddCronJob("database-backup", cfg.Backup.Schedule, func(ctx context.Context) error {
			_, err := backupUseCase.Execute(ctx)
			return err
		})
		if err != nil {
			appLogger.Fatal("cannot schedule backup", err)
		}
	}
	sched.Start()

	// Contact notifications
	var consumers conc.WaitGroup
	if len(cfg.Kafka.Brokers) > 0 {
		notifyUseCase := contactUC.NewNotifyOwnerUseCase(mail.NewSMTPMailer(cfg, appLogger), cfg.Mail.OwnerTo, appLogger)
		consumer := event.NewContactConsumer(cfg, appLogger)
		defer func() {
			if err := consumer.Close(); err != nil {
				appLogger.Error("Failed to close Kafka consumer", err)
			}
		}()
		consumers.Go(func() {
			if err := consumer.Run(ctx, notifyUseCase.Execute); err != nil {
				appLogger.Error("Contact consumer stopped", err)
			}
		})
	} else {
		appLogger.Warn("Kafka brokers not configured, contact consumer disabled")
	}

	<-ctx.Done()
	appLogger.Info("Shutting down worker...")

	// The consumer must return before its reader is closed.
	consumers.Wait()

	if err := sched.Stop(); err != nil {
		appLogger.Error("Failed to stop scheduler", err)
	}
	if err := shutdownTracing(context.Background()); err != nil {
		appLogger.Error("Failed to shutdown tracer provider", err)
	}
	appLogger.Info("Worker exited")
}
