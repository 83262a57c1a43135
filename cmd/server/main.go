package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/kpa-form-data/internal/config"
	"github.com/iliyamo/kpa-form-data/internal/database"
	"github.com/iliyamo/kpa-form-data/internal/handler"
	"github.com/iliyamo/kpa-form-data/internal/middleware"
	"github.com/iliyamo/kpa-form-data/internal/repository"
	"github.com/iliyamo/kpa-form-data/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("ensure schema: %v", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	wheelSpecs := repository.NewWheelSpecRepo(db)
	bogies := repository.NewBogieChecksheetRepo(db)

	forms := handler.NewFormHandler(wheelSpecs, bogies, cfg.AMQPURL)
	auth := handler.NewAuthHandler(cfg, users)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Rate limiting is a no-op when redis is unreachable or disabled.
	rlCfg := config.LoadRateLimitConfig()
	rdb := config.NewRedisClient()
	if rlCfg.Enabled && rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))

	router.RegisterRoutes(e)
	router.RegisterAPI(e, forms, auth, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
