package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	cartapp "github.com/dwikikusuma/plantshop/internal/cart/app"
	cartinfra "github.com/dwikikusuma/plantshop/internal/cart/infra"
	"github.com/dwikikusuma/plantshop/internal/cart/infra/adapter"
	catalogapp "github.com/dwikikusuma/plantshop/internal/catalog/app"
	"github.com/dwikikusuma/plantshop/internal/catalog/infra/static"
	checkoutapp "github.com/dwikikusuma/plantshop/internal/checkout/app"
	"github.com/dwikikusuma/plantshop/internal/storefront/web"
	"github.com/dwikikusuma/plantshop/pkg/config"
	"github.com/dwikikusuma/plantshop/pkg/logger"
	"github.com/dwikikusuma/plantshop/pkg/shutdown"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
		File:      cfg.LogFile,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := cartinfra.OpenStore(cfg.StoreDriver, cfg.StorePath, cfg.Currency)
	if err != nil {
		log.Error("store open failed", slog.Any("err", err), slog.String("driver", cfg.StoreDriver))
		os.Exit(1)
	}
	defer store.Close()

	// Catalog
	catalogSvc := catalogapp.NewService(static.NewProductRepo(cfg.Currency))

	// Cart
	cartSvc := cartapp.NewService(store, adapter.NewCatalogServiceReader(catalogSvc))

	// Checkout
	checkoutSvc := checkoutapp.NewService(log)

	srv, err := web.NewServer(log, catalogSvc, cartSvc, checkoutSvc, web.Options{
		Currency:      cfg.Currency,
		SessionSecret: cfg.SessionSecret,
		SecureCookies: !cfg.IsDev(),
		Ready:         store.Ping,
	})
	if err != nil {
		log.Error("web server init failed", slog.Any("err", err))
		os.Exit(1)
	}

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}

	healthSrv := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("grpc starting", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		watchStore(gctx, log, store, healthSrv)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		healthSrv.Shutdown()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()

		if err := httpServer.Shutdown(stopCtx); err != nil {
			log.Error("http shutdown error", slog.Any("err", err))
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopCtx.Done():
			log.Warn("graceful stop timeout, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
	}
	log.Info("bye")
}

// watchStore mirrors store health into the gRPC health service until ctx
// is done.
func watchStore(ctx context.Context, log *slog.Logger, store cartinfra.Store, healthSrv *health.Server) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_UNKNOWN
	for {
		status := healthpb.HealthCheckResponse_SERVING
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := store.Ping(pingCtx); err != nil && ctx.Err() == nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			log.Warn("store ping failed", slog.Any("err", err))
		}
		cancel()

		if status != last {
			healthSrv.SetServingStatus("", status)
			last = status
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
