package main

import (
	"flag"
	"log"
	"time"

	"github.com/samanqayyum/dhv/internal/chart"
	"github.com/samanqayyum/dhv/internal/engine"
)

func main() {
	dataDir := flag.String("data", ".", "directory holding the four indicator CSV files")
	out := flag.String("out", "infographic.png", "output image path")
	flag.Parse()

	t0 := time.Now()

	batch, err := engine.LoadAll(*dataDir)
	if err != nil {
		log.Fatalf("load datasets: %v", err)
	}

	dashboard, err := batch.Dashboard()
	if err != nil {
		log.Fatalf("build dashboard: %v", err)
	}

	if err := chart.New(dashboard).WriteFile(*out); err != nil {
		log.Fatalf("render infographic: %v", err)
	}

	log.Printf("Wrote %s (%d DPI). Time: %v", *out, chart.DPI, time.Since(t0))
}
