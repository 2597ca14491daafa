package main

import (
    "context"
    "errors"
    "fmt"
    "log/slog"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/spf13/cobra"

    "github.com/tinoosan/pantry/internal/config"
    "github.com/tinoosan/pantry/internal/httpapi"
    "github.com/tinoosan/pantry/internal/pantry"
    "github.com/tinoosan/pantry/internal/storage/memory"
)

var serveCmd = &cobra.Command{
    Use:   "serve",
    Short: "Run the HTTP service",
    Args:  cobra.NoArgs,
    RunE: func(cmd *cobra.Command, args []string) error {
        cfg, err := config.Load(envFile, configFile)
        if err != nil {
            return fmt.Errorf("load config: %w", err)
        }
        logger := cfg.Logger()
        slog.SetDefault(logger)

        ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
        defer stop()
        return serve(ctx, cfg, logger)
    },
}

// devItem is the record the service starts with when seeding is enabled.
var devItem = pantry.Record{GroceryType: pantry.TypeBakedGoods, Quantity: 10, ExpirationDate: "10-20-2022"}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
    store := memory.New()
    store.OnChange(httpapi.RecordStoreSizes)
    if cfg.Seed {
        store.SeedItem("item1", devItem)
        logger.Info("DEV seed (memory)", "item", "item1", "grocery_type", devItem.GroceryType, "quantity", devItem.Quantity)
    }

    srv := &http.Server{
        Addr:              cfg.Addr,
        Handler:           httpapi.New(store, store, store, store, store, store, logger).Handler(),
        ReadTimeout:       5 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        WriteTimeout:      10 * time.Second,
        IdleTimeout:       60 * time.Second,
    }

    errCh := make(chan error, 1)
    go func() {
        logger.Info("pantry service listening", "addr", srv.Addr)
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            errCh <- err
        }
    }()

    select {
    case <-ctx.Done():
        ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
        defer cancel()
        if err := srv.Shutdown(ctxShutdown); err != nil {
            logger.Error("server shutdown error", "err", err)
            return err
        }
        logger.Info("pantry service stopped")
        return nil
    case err := <-errCh:
        logger.Error("server error", "err", err)
        return err
    }
}
