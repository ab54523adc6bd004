package main

import (
	"log"
	"net/http"
	"time"

	"petcare-crm/internal/adapters/storage/sqlite"
	"petcare-crm/internal/platform/config"
	"petcare-crm/internal/platform/logger"
	"petcare-crm/internal/router"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	appLog := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	opts := router.Options{Log: appLog}
	if cfg.DBPath != "" {
		db, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		defer db.Close()
		opts.DB = db
	} else {
		appLog.Warn("DB_PATH vacío, usando store en memoria (solo dev)", nil)
	}

	h, err := router.New(opts)
	if err != nil {
		log.Fatalf("build router: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	appLog.Info("starting server", map[string]any{
		"addr": srv.Addr,
		"db":   cfg.DBPath,
	})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
