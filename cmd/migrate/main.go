package main

import (
	"flag"
	"log/slog"
	"os"

	"candidate-assistance/internal/handler/middleware"
	"candidate-assistance/internal/infra/db"
	"candidate-assistance/internal/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	slog.Info("running database migrations", "host", cfg.DB.Host, "db", cfg.DB.DBName, "down", *down)
	if err := db.Migrate(cfg.DB.BuildMigrateDSN(), *down); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
}
