package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"

	"github.com/cmars/diamondfarm/api"
	"github.com/cmars/diamondfarm/config"
	"github.com/cmars/diamondfarm/density"
	"github.com/cmars/diamondfarm/logging"
	"github.com/cmars/diamondfarm/random"
	"github.com/cmars/diamondfarm/utility"
)

func main() {
	configPath := flag.String("config", os.Getenv("DIAMONDFARM_CONFIG"), "path to a YAML tuning file")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	envErr := godotenv.Load()

	cfg, err := config.Load(*configPath)
	logger := logging.New(os.Stderr, cfg.LogLevel)
	if envErr != nil {
		_ = level.Debug(logger).Log("msg", "no .env file loaded", "err", envErr)
	}
	if err != nil {
		_ = level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Mount("/utility", api.Router(utility.New(cfg, log.With(logger, "strategy", "utility")), logger))
	r.Mount("/density", api.Router(density.New(cfg, log.With(logger, "strategy", "density")), logger))
	r.Mount("/random", api.Router(random.New, logger))

	_ = level.Info(logger).Log("msg", "listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		_ = level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
