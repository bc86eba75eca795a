package main

import (
	"fmt"
	"log"

	"hnl-console/internal/analytics"
	"hnl-console/internal/config"
	"hnl-console/internal/database"
	"hnl-console/internal/server"
	"hnl-console/internal/store"
)

func main() {
	cfg := config.Load()
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	database.Init(cfg.DBDSN)

	weights, err := analytics.LoadWeights(cfg.WeightsPath)
	if err != nil {
		log.Fatalf("weights: %v", err)
	}

	st := store.New(database.DB)
	engine := analytics.NewEngine(st, weights)

	r := server.NewRouter(cfg, st, engine)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting ops API on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
