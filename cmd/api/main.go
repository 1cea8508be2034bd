package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"voc-dashboard-go/internal/assistant"
	"voc-dashboard-go/internal/config"
	"voc-dashboard-go/internal/dataset"
	"voc-dashboard-go/internal/logger"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "voc-dashboard-go").Info("starting service")

	cfg, err := config.Load(envOr("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	var src dataset.RowSource
	if cfg.UseSheets() {
		log.WithField("spreadsheet_id", cfg.Data.SpreadsheetID).Info("using sheets data source")
		src = dataset.SheetsSource{
			SpreadsheetID: cfg.Data.SpreadsheetID,
			Range:         cfg.Data.Range,
			APIKey:        cfg.Data.APIKey,
		}
	} else {
		log.WithField("workbook_path", cfg.Data.WorkbookPath).Info("using workbook data source")
		src = dataset.WorkbookSource{Path: cfg.Data.WorkbookPath}
	}

	var streamer assistant.Streamer
	if cfg.LLM.Mock {
		log.Info("mock assistant mode ON")
		streamer = assistant.Mock{}
	} else {
		streamer = assistant.New(assistant.Config{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
		})
	}

	srv := &server{
		source:   dataset.NewCachedSource(src, cfg.Data.CacheTTL),
		streamer: streamer,
		now:      time.Now,
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
