/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

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

	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/startrack-app/startrack/internal/api"
	"github.com/startrack-app/startrack/internal/favorites"
	"github.com/startrack-app/startrack/internal/heroes"
	"github.com/startrack-app/startrack/internal/teams"
	"github.com/startrack-app/startrack/pkg/auth/biometric"
	"github.com/startrack-app/startrack/pkg/cache"
	"github.com/startrack-app/startrack/pkg/clients/superhero"
	"github.com/startrack-app/startrack/pkg/common/structs"
	"github.com/startrack-app/startrack/pkg/config"
	"github.com/startrack-app/startrack/pkg/eventhub"
	"github.com/startrack-app/startrack/pkg/logger"
	"github.com/startrack-app/startrack/pkg/store"
)

const shutdownGracePeriod = 10 * time.Second

func main() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "default"
	}

	if err := run(environment); err != nil {
		logrus.WithError(err).Fatal("startrack exited")
	}
}

func run(environment string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(environment)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.SetLevel(cfg.App.LogLevel)

	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	})

	cacheClient, err := cache.New(&cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to init cache driver %q: %w", cfg.Cache.Driver, err)
	}
	defer func() {
		if err := cacheClient.Disconnect(); err != nil {
			log.WithError(err).Warn("error disconnecting cache")
		}
	}()

	db := store.New(cacheClient)

	favoritesHub := eventhub.New[structs.FavoritesState]()
	teamsHub := eventhub.New[[]structs.Team]()

	deps := api.Dependencies{
		Heroes:    heroes.NewRepository(db.Hero, superhero.NewClient(&cfg.Superhero)),
		Favorites: favorites.NewService(ctx, db.Favorite, favoritesHub),
		Teams:     teams.NewService(ctx, db.Team, teamsHub),
		// No device verification capability is wired on a plain server
		// deployment; gated routes approve unconditionally.
		Verifier: biometric.InsecureVerifier{},
	}

	handler := nethttp.Middleware(opentracing.GlobalTracer(), api.NewRouter(deps))
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGracePeriod)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
