package main

import (
	"log"
	"os"

	"hnl-console/internal/analytics"
	"hnl-console/internal/config"
	"hnl-console/internal/console"
	"hnl-console/internal/database"
	"hnl-console/internal/store"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	weights, err := analytics.LoadWeights(cfg.WeightsPath)
	if err != nil {
		log.Fatalf("weights: %v", err)
	}

	st := store.New(database.DB)
	engine := analytics.NewEngine(st, weights)

	c := console.New(os.Stdin, st, engine)
	if err := c.Run(); err != nil {
		log.Fatalf("console error: %v", err)
	}
}
