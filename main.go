package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelapi/internal/config"
	router "travelapi/internal/http"
	"travelapi/internal/repositories"
	"travelapi/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.NewLogger(env.IsProduction(), env.LogLevel)
	if err != nil {
		log.Fatalf("Gagal inisialisasi logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Store dibuat sekali di sini lalu di-inject ke semua handler.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repositories.Open(startCtx, env)
	if err != nil {
		cancelStart()
		logger.Fatal("Gagal membuka store", zap.String("driver", env.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Gagal menutup store", zap.Error(err))
		}
	}()

	if err := initStore(startCtx, store, env.SeedSampleData); err != nil {
		cancelStart()
		logger.Fatal("Gagal inisialisasi store", zap.Error(err))
	}
	cancelStart()
	logger.Info("Store siap", zap.String("driver", env.StoreDriver), zap.Bool("seeded", env.SeedSampleData))

	r := router.NewRouter(env, store, logger)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server berjalan", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Gagal menjalankan server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown server gagal", zap.Error(err))
		return
	}

	logger.Info("Server berhenti dengan aman.")
}

func initStore(ctx context.Context, store repositories.Store, withSamples bool) error {
	if !withSamples {
		return store.Init(ctx, nil)
	}
	seed, err := repositories.SampleData()
	if err != nil {
		return err
	}
	return store.Init(ctx, seed)
}
