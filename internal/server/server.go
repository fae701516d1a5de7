package server

import (
	"context"
	"log"

	"backend-myhike/internal/auth"
	"backend-myhike/internal/config"
	"backend-myhike/internal/dashboard"
	"backend-myhike/internal/hike"
	"backend-myhike/internal/profile"
	"backend-myhike/internal/quote"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
	Feed  *quote.Feed
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
		Feed:  quote.NewFeed(redisClient),
	}

	registerRoutes(s)

	if cfg.SeedSampleData && db != nil {
		seedSampleData(hike.NewService(db))
	}
	return s
}

// seedSampleData is best effort. A failure leaves the hikes table for the
// next startup to fill and never blocks the server from coming up.
func seedSampleData(hikes *hike.Service) {
	inserted, err := hikes.Seed(context.Background())
	if err != nil {
		log.Printf("sample hike seeding failed: %v", err)
		return
	}
	if inserted > 0 {
		log.Printf("seeded %d sample hikes", inserted)
	}
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	gate := auth.Gate(s.Cfg.JWTSecret, s.Cfg.SigninURL)

	hikes := hike.NewService(s.DB)
	profiles := profile.NewService(s.DB)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	hike.RegisterRoutes(s.App.Group("/hikes"), hikes)
	profile.RegisterRoutes(s.App.Group("/profile"), profiles, jwtMiddleware)
	dashboard.RegisterRoutes(s.App.Group("/dashboard"), dashboard.NewService(profiles, hikes), gate)
	quote.RegisterRoutes(s.App.Group("/quotes"), quote.NewService(s.DB, s.Feed), s.Feed, jwtMiddleware)
}
