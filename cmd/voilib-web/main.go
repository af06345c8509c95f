// Package main is the entry point for the voilib web server.
// It loads configuration, resolves the API base URL, connects to services,
// sets up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voilib/internal/apiclient"
	"voilib/internal/cache"
	"voilib/internal/config"
	"voilib/internal/database"
	"voilib/internal/handlers"
	"voilib/internal/render"
	"voilib/internal/router"
	"voilib/internal/store"
	"voilib/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text in development, JSON everywhere else.
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))

	// The base URL is resolved exactly once and passed down from here.
	ep := cfg.Endpoint()
	apiURL := ep.BaseURL()

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"api_url", apiURL,
		"port_policy", ep.Policy.String(),
	)

	ctx := context.Background()

	// Connect to Valkey for the shell cache. Shells from a previous build
	// may be stale, so start from an empty cache.
	valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	shellCache := cache.NewShellCache(valkeyClient, apiURL, cache.DefaultShellTTL)
	shellCache.InvalidateAll(ctx)

	// Search analytics is optional; without it PostgreSQL is not needed.
	var (
		searches  handlers.SearchRecorder
		analytics *handlers.Analytics
	)
	if cfg.AnalyticsEnabled {
		var db *sql.DB
		db, err = database.Connect(ctx, cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		searchStore := store.NewSearchStore(db)
		searches = searchStore
		analytics = handlers.NewAnalytics(searchStore)
	} else {
		slog.Warn("search analytics disabled")
	}

	// Probe the API once so a wrong base URL shows up in the startup log.
	api := apiclient.New(ep, nil)
	probeCtx, cancelProbe := context.WithTimeout(ctx, 5*time.Second)
	if version, err := api.Version(probeCtx); err != nil {
		slog.Warn("voilib api not reachable", "api_url", apiURL, "error", err)
	} else {
		slog.Info("voilib api reachable", "api_url", apiURL, "version", version)
	}
	cancelProbe()

	renderer, err := render.New(apiURL, cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize shell renderer", "error", err)
		os.Exit(1)
	}

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		slog.Error("failed to open embedded assets", "error", err)
		os.Exit(1)
	}

	spa := handlers.NewSPA(renderer, shellCache, searches)
	health := handlers.NewHealth(api)

	r := router.New(router.Options{
		APIBaseURL: apiURL,
		RateLimit:  cfg.RateLimit,
		Static:     static,
		Analytics:  analytics,
	}, spa, health)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
