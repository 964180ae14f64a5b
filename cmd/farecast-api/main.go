// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farecast/internal/ai"
	"farecast/internal/config"
	httptransport "farecast/internal/http"
	"farecast/internal/infra"
	"farecast/internal/maps"
	"farecast/internal/modules/predict"
	"farecast/internal/modules/surge"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	store := predict.NewStore(dbPool)
	cache := predict.NewCache(redisClient, time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second)

	trainerCfg := predict.TrainerConfig{
		Samples: cfg.Model.Samples,
		Trees:   cfg.Model.Trees,
		Seed:    cfg.Model.Seed,
	}
	predictSvc := predict.NewService(trainerCfg, surge.NewResolver(surge.DefaultZones()), store, cache)

	var explainer ai.Explainer
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiExplainer(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		explainer = gemini
	}

	var routes *maps.RouteService
	if cfg.Maps.APIKey != "" {
		routes, err = maps.NewRouteService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Predict:        predictSvc,
		Explainer:      explainer,
		Routes:         routes,
		HistoryEnabled: true,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
