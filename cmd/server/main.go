package main

import (
	"bytes"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/samanqayyum/dhv/internal/api"
	"github.com/samanqayyum/dhv/internal/chart"
	"github.com/samanqayyum/dhv/internal/engine"
)

func main() {
	dataDir := flag.String("data", ".", "directory holding the four indicator CSV files")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// The API is live immediately and answers 503 until the batch
	// below finishes.
	h := api.NewHandler()
	h.RegisterRoutes(e)

	go func() {
		log.Println("BACKGROUND: loading indicator datasets...")
		t0 := time.Now()

		batch, err := engine.LoadAll(*dataDir)
		if err != nil {
			log.Fatalf("load datasets: %v", err)
		}
		dashboard, err := batch.Dashboard()
		if err != nil {
			log.Fatalf("build dashboard: %v", err)
		}

		var buf bytes.Buffer
		if err := chart.New(dashboard).Render(&buf); err != nil {
			log.Fatalf("render infographic: %v", err)
		}

		h.SetData(dashboard, buf.Bytes())
		log.Printf("BACKGROUND: ready in %v", time.Since(t0))
	}()

	log.Printf("Server ready on %s (data loading in background...)", *addr)
	e.Logger.Fatal(e.Start(*addr))
}
