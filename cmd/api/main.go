package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ariefcatur/go-order-desk.git/internal/clock"
	"github.com/ariefcatur/go-order-desk.git/internal/config"
	"github.com/ariefcatur/go-order-desk.git/internal/httpx"
	"github.com/ariefcatur/go-order-desk.git/internal/inventory"
	"github.com/ariefcatur/go-order-desk.git/internal/orders"
	"github.com/ariefcatur/go-order-desk.git/internal/queue"
	"github.com/ariefcatur/go-order-desk.git/internal/service"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("service", cfg.ServiceName))

	catalog := inventory.SampleCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = inventory.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			logger.Fatal("load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
		}
	}

	clk := clock.NewSystem()
	ledger := inventory.NewLedger(catalog)
	store := orders.NewStore(ledger, clk)
	q := queue.New(clk)
	svc := service.NewOrderService(ledger, store, q, logger)
	logger.Info("inventory seeded", zap.Int("products", len(catalog)))

	router := httpx.NewRouter(logger)
	oh := &httpx.OrdersHandler{Service: svc, Log: logger}
	oh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server exit", zap.Error(err))
	}
}
