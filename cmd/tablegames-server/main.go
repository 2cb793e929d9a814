package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/HowesGamingLLC/tablegames/internal/api"
	"github.com/HowesGamingLLC/tablegames/internal/games"
	"github.com/HowesGamingLLC/tablegames/internal/wallet"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := buildLogger()
	defer logger.Sync()

	gw, cleanup, err := buildWallet(logger)
	if err != nil {
		logger.Fatal("failed to open wallet store", zap.Error(err))
	}
	defer cleanup()

	engine := games.NewEngine(gw, games.DefaultTables(), logger)
	server := api.NewServer(engine, logger)

	addr := os.Getenv("TABLEGAMES_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func buildLogger() *zap.Logger {
	if os.Getenv("TABLEGAMES_ENV") == "development" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return logger
}

// buildWallet opens the sqlite wallet store when TABLEGAMES_DB is set and
// falls back to the in-memory store otherwise.
func buildWallet(logger *zap.Logger) (wallet.Gateway, func(), error) {
	path := os.Getenv("TABLEGAMES_DB")
	if path == "" {
		logger.Warn("TABLEGAMES_DB not set, using in-memory wallet store")
		return wallet.NewMemoryStore(), func() {}, nil
	}

	store, err := wallet.NewSQLiteStore(path)
	if err != nil {
		return nil, nil, err
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, nil, err
	}
	logger.Info("wallet store opened", zap.String("path", path))
	return store, func() { store.Close() }, nil
}
