package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LucasOrihuela13/sistema-hotel/app"
	"github.com/LucasOrihuela13/sistema-hotel/app/handlers"
	"github.com/LucasOrihuela13/sistema-hotel/app/middleware"
	"github.com/LucasOrihuela13/sistema-hotel/app/repositories"
	"github.com/LucasOrihuela13/sistema-hotel/app/usecases"
	"github.com/LucasOrihuela13/sistema-hotel/config"
	"github.com/LucasOrihuela13/sistema-hotel/database"
	"github.com/LucasOrihuela13/sistema-hotel/server"
)

func main() {
	log, err := newLog("hotel-api")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Errorw("startup", "error", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	// .env is optional; config.yaml carries the non-secret defaults.
	if err := godotenv.Load(); err != nil {
		log.Infow("startup", "status", "no .env file, using environment as-is")
	}

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log.Infow("startup", "status", "connecting to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	db, err := database.ConnectDB(
		cfg.Database.User, cfg.Database.Password, cfg.Database.DBName,
		cfg.Database.Host, cfg.Database.Port, cfg.Database.SSLMode,
	)
	if err != nil {
		return fmt.Errorf("connecting to db: %w", err)
	}
	defer func() {
		log.Infow("shutdown", "status", "closing database connection")
		db.Close()
	}()

	log.Infow("startup", "status", "updating database schema")
	if err := database.Migrate(context.Background(), db); err != nil {
		return fmt.Errorf("updating database schema: %w", err)
	}

	// Wiring
	resRepo := repositories.NewReservationRepository(db)

	resUsecase := usecases.NewReservationUsecase(resRepo, cfg.Hotel.Rooms, cfg.StorageTimeout())
	roomUsecase := usecases.NewRoomUsecase(resRepo, cfg.Hotel.Rooms, cfg.StorageTimeout())
	authUsecase := usecases.NewAuthUsecase(cfg.Auth.AccessPasswordHash, cfg.Auth.JWTSecret, cfg.TokenTTL())

	srv := server.NewEchoServer(cfg)
	app.RegisterRoutes(
		srv.GetEcho(),
		handlers.NewAuthHandler(authUsecase, log),
		handlers.NewReservationHandler(resUsecase, log),
		handlers.NewRoomHandler(roomUsecase, log),
		middleware.AuthMiddleware([]byte(cfg.Auth.JWTSecret)),
	)

	// Start and wait for an interrupt or terminate signal.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("startup", "status", "http server listening", "port", cfg.Server.Port)
		serverErrors <- srv.Start()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Infow("shutdown", "status", "shutdown complete")
	}

	return nil
}

func newLog(serviceName string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.InitialFields = map[string]interface{}{
		"service": serviceName,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
