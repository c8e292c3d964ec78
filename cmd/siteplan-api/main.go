// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"siteplan/internal/config"
	httptransport "siteplan/internal/http"
	"siteplan/internal/infra"
	"siteplan/internal/maps"
	"siteplan/internal/modules/hazard"
	"siteplan/internal/modules/layout"
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

	layoutStore := layout.NewStore(dbPool)
	layoutSvc := layout.NewService(layoutStore)

	hazardStore := hazard.NewStore(redisClient)
	var hazardProvider hazard.Provider
	if cfg.Hazard.APIURL != "" {
		hazardProvider, err = hazard.NewHTTPProvider(cfg.Hazard.APIURL, cfg.Hazard.APIKey)
		if err != nil {
			log.Fatalf("hazard init: %v", err)
		}
	} else {
		log.Print("SITEPLAN_HAZARD_API_URL not set; flood hazard endpoint disabled")
	}
	hazardSvc := hazard.NewService(hazardStore, hazardProvider)

	var geocodeSvc *maps.GeocodeService
	if cfg.Maps.APIKey != "" {
		geocodeSvc, err = maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Print("SITEPLAN_MAPS_API_KEY not set; geocoding endpoints disabled")
	}

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Layout:  layoutSvc,
		Hazard:  hazardSvc,
		Geocode: geocodeSvc,
		Render:  cfg.Render,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
