// Package main é o ponto de entrada da API HTTP do brtools
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

	"go.uber.org/zap"

	"github.com/magnani/brtools/internal/app"
	"github.com/magnani/brtools/internal/config"
	"github.com/magnani/brtools/internal/handlers"
	"github.com/magnani/brtools/internal/logger"
)

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configurações: %v", err)
	}

	zlog, err := logger.New(logger.Options{Env: cfg.Env, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Erro ao inicializar logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("iniciando brtools API", zap.String("env", cfg.Env))

	application, err := app.New(cfg, zlog)
	if err != nil {
		zlog.Fatal("erro ao montar aplicação", zap.Error(err))
	}

	// Configura o router
	mux := http.NewServeMux()
	handlers.NewToolsHandler(application.Dispatcher, zlog).Register(mux)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Lookup.Timeout + 10*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zlog.Info("servidor HTTP rodando",
			zap.String("addr", server.Addr),
			zap.String("health", "http://localhost"+server.Addr+"/health"),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("erro ao iniciar servidor", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("erro ao encerrar servidor", zap.Error(err))
	}
	zlog.Info("servidor encerrado")
}
