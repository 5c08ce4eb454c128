package main

import (
	"net/http"
	"os"
	"time"

	"github.com/medpaw02-hue/PawMed/internal/adapters/auth/token"
	"github.com/medpaw02-hue/PawMed/internal/config"
	"github.com/medpaw02-hue/PawMed/internal/platform/logger"
	"github.com/medpaw02-hue/PawMed/internal/router"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfgPath).Msg("config inválida")
	}

	// Sin PAWMED_SESSION_SECRET el server corre en modo dev: login sin
	// token y mutaciones sin sesión.
	signer := token.NewSigner(os.Getenv("PAWMED_SESSION_SECRET"), 0)
	if !signer.IsConfigured() {
		log.Warn().Msg("PAWMED_SESSION_SECRET ausente: modo dev, sin sesión obligatoria")
	}

	r := router.NewRouter(router.Options{
		Cfg:     cfg,
		CfgPath: cfgPath,
		Signer:  signer,
		Logger:  log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}
