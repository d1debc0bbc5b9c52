package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/duynguyendang/stringlab/internal/config"
	"github.com/duynguyendang/stringlab/pkg/logger"
	"github.com/duynguyendang/stringlab/pkg/server"
	"github.com/duynguyendang/stringlab/pkg/service"
	"github.com/duynguyendang/stringlab/pkg/store"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	inMemory := flag.Bool("in-memory", false, "use the in-memory store instead of SQLite")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.LogJSON)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	var repo store.Repository
	if *inMemory {
		zl.Infow("using in-memory store")
		repo = store.NewMemoryStore()
	} else {
		db, err := store.OpenDatabase(cfg.DatabasePath)
		if err != nil {
			zl.Errorw("failed to open database", "path", cfg.DatabasePath, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		sqlStore, err := store.NewSQLiteStore(db, zl)
		if err != nil {
			zl.Errorw("failed to initialize store", "error", err)
			os.Exit(1)
		}
		repo = sqlStore
		zl.Infow("using sqlite store", "path", cfg.DatabasePath)
	}

	svc := service.New(repo, zl)
	srv := server.NewServer(svc, zl)

	zl.Infow("starting string analysis API", "addr", cfg.Addr)
	if err := srv.Run(cfg.Addr); err != nil {
		zl.Errorw("server failed", "error", err)
		os.Exit(1)
	}
}
