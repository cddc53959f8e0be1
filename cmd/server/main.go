package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finloom/internal/config"
	"finloom/internal/derive"
	"finloom/internal/handler"
	"finloom/internal/report/excel"
	"finloom/internal/repository/postgres"
	"finloom/internal/router"
	"finloom/internal/service"
	"finloom/internal/sheet"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	factRepo := postgres.NewFactRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Derivation engine and workbook sink
	engine := derive.NewEngine(factRepo, reportRepo)
	sink := excel.NewSink(cfg.Reports.Dir)

	// Initialize services
	ledgerSvc := service.NewLedgerService(factRepo, sheet.NewReader(), &cfg.Uploads)
	reportSvc := service.NewReportService(engine, sink, reportRepo)
	consolidationSvc := service.NewConsolidationService(sink)

	// Initialize handlers
	ledgerH := handler.NewLedgerHandler(ledgerSvc)
	reportH := handler.NewReportHandler(reportSvc, consolidationSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, ledgerH, reportH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Println("server stopped")
	return nil
}
