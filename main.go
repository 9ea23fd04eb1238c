package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bitsa_backend/internals/configs"
	database "bitsa_backend/internals/databases"
	statsScheduler "bitsa_backend/internals/features/stats/scheduler"
	statsService "bitsa_backend/internals/features/stats/service"
	"bitsa_backend/internals/helpers/cache"
	routes "bitsa_backend/internals/route"
	"bitsa_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// 🔌 DB connect + pool + schema
	database.ConnectDB(cfg)
	database.TunePool()
	if err := database.AutoMigrate(database.DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// `bitsa_backend seed` runs the seeders and exits.
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seeds.RunAllSeeds(database.DB, cfg); err != nil {
			log.Fatalf("❌ Seed failed: %v", err)
		}
		log.Println("✅ Seed completed")
		database.Close()
		return
	}

	database.WarmUpQueries()

	statsCache := cache.New(cfg.RedisURL, "bitsa:")
	defer statsCache.Close()
	stats := statsService.NewStatsService(database.DB, statsCache, cfg.StatsCacheTTL)

	// ⏱ scheduler setelah DB siap
	runner, err := statsScheduler.Start(cfg.SchedulerSpec, stats)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	app := routes.NewApp(database.DB, cfg, stats)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", cfg.Port)); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	<-runner.Stop().Done()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}
