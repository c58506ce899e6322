package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"spi-eshop-be/internal/bootstrap"
	"spi-eshop-be/internal/config"
	"spi-eshop-be/internal/model"
	"spi-eshop-be/internal/server"
	"spi-eshop-be/internal/tracer"
	"spi-eshop-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Tracing
	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled, cfg.App.OtelEndpoint)

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	if cfg.App.MigrateOnStart {
		if err := database.Migrate(gormDB, model.All()...); err != nil {
			log.Panicf("Migration failed: %v", err)
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 5. Start Background Services
	go container.WebSocketHub.Run()
	if err := container.ConsumerService.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}
	if err := container.CatalogWatcher.Start(ctx); err != nil {
		log.Printf("Catalog watcher disabled: %v", err)
	}

	// 6. Run Server
	srv := server.New(cfg, container)
	go func() {
		if err := srv.Run(); err != nil {
			log.Printf("Server stopped: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	container.CatalogWatcher.Stop()
	container.WebSocketHub.Stop()
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	container.Close()

	flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracer(flushCtx); err != nil {
		log.Printf("Tracer shutdown error: %v", err)
	}
}
