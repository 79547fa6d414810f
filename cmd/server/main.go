// @title Fundbridge API
// @version 1.0
// @description Crowdfunding platform connecting student project creators with investors.
// @BasePath /

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

	"golang.org/x/sync/errgroup"

	"github.com/rohits-web03/fundbridge/internal/api"
	"github.com/rohits-web03/fundbridge/internal/api/handlers"
	"github.com/rohits-web03/fundbridge/internal/api/services"
	"github.com/rohits-web03/fundbridge/internal/api/view"
	"github.com/rohits-web03/fundbridge/internal/auth"
	"github.com/rohits-web03/fundbridge/internal/config"
	"github.com/rohits-web03/fundbridge/internal/logging"
	"github.com/rohits-web03/fundbridge/internal/repositories"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.Environment)

	db, err := repositories.Open(cfg.DBDriver, cfg.DB_URL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	store := repositories.NewStore(db)
	defer store.Close()
	log.Info().Str("driver", cfg.DBDriver).Msg("connected to database")

	images := repositories.NewImageStore(cfg.R2)
	if images == nil {
		log.Warn().Msg("R2 not configured; project image uploads disabled")
	}

	h := handlers.New(handlers.Deps{
		Store:         store,
		Sessions:      auth.NewSessionManager(cfg.JWTSecret, cfg.SessionTTL, cfg.IsProduction(), store.FindUserByID),
		Responder:     view.NewResponder(view.NewFlashStore(cfg.SessionSecret, cfg.IsProduction()), view.JSONRenderer{}),
		Images:        images,
		Google:        services.GoogleOAuthConfig(cfg.Google),
		StateKey:      cfg.StateSecret,
		SecureCookies: cfg.IsProduction(),
		Log:           log,
	})

	router, err := api.SetupRouter(h, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("setup router")
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting fundbridge server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		return
	}
	log.Info().Msg("server stopped")
}
