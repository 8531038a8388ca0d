// Command routecalc computes least-cost routes over a randomly generated
// terrain map, either interactively on stdin/stdout or as an HTTP service.
package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/katalvlaran/terrainroute/internal/config"
	"github.com/katalvlaran/terrainroute/internal/console"
	"github.com/katalvlaran/terrainroute/internal/httpapi"
	"github.com/katalvlaran/terrainroute/internal/session"
	"github.com/katalvlaran/terrainroute/terrain"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("routecalc: %v", err)
	}

	if cfg.Serve {
		srv := &http.Server{
			Addr:              cfg.ServerAddr,
			Handler:           httpapi.NewRouter(cfg.MaxArea),
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
		}
		log.Printf("routecalc: listening on %s", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("routecalc: %v", err)
		}
		return
	}

	s := session.New(os.Stdin, os.Stdout, terrain.DefaultGenerator(), terrain.WithSeed(cfg.Seed))
	if _, err := s.Run(); err != nil && !errors.Is(err, console.ErrInputClosed) {
		log.Fatalf("routecalc: %v", err)
	}
}
