// Package server contains the HTTP handlers for the catalog and assistant APIs.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	_ "tinkerlab/docs" // swagger docs
	"tinkerlab/internal/assistant"
	"tinkerlab/internal/cache"
	"tinkerlab/internal/chat"
	"tinkerlab/internal/config"
	"tinkerlab/internal/database"
	"tinkerlab/internal/middleware"
	"tinkerlab/internal/models"
	"tinkerlab/internal/repository"
	"tinkerlab/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc

	projectRepo   repository.ProjectRepository
	premadeRepo   repository.PremadeProjectRepository
	tutorialRepo  repository.TutorialRepository
	communityRepo repository.CommunityRepository
	teamUpRepo    repository.TeamUpRepository

	sessions *chat.Store

	catalogService   *service.CatalogService
	communityService *service.CommunityService
	teamUpService    *service.TeamUpService
	assistantService *service.AssistantService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	client := assistant.NewHTTPClient(cfg.AssistantURL, cfg.AssistantAPIKey, cfg.AnalyticsURL)

	return NewServerWithDeps(cfg, db, redisClient, client)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis first.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, client assistant.Client) (*Server, error) {
	prom := middleware.InitMetrics("tinkerlab-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		projectRepo:    repository.NewProjectRepository(db),
		premadeRepo:    repository.NewPremadeProjectRepository(db),
		tutorialRepo:   repository.NewTutorialRepository(db),
		communityRepo:  repository.NewCommunityRepository(db),
		teamUpRepo:     repository.NewTeamUpRepository(db),
		sessions:       chat.NewStore(chat.DefaultIdleTTL),
	}

	server.catalogService = service.NewCatalogService(
		server.projectRepo, server.premadeRepo, server.tutorialRepo, server.communityRepo)
	server.communityService = service.NewCommunityService(server.communityRepo)
	server.teamUpService = service.NewTeamUpService(server.teamUpRepo)
	server.assistantService = service.NewAssistantService(client, server.sessions)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Distributed tracing spans per request
	app.Use(middleware.TracingMiddleware())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (120 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)
	api.Get("/", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "TinkerLab Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (single admin account)
	auth := api.Group("/auth")
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Project catalog
	projects := api.Group("/projects")
	projects.Get("/", s.GetProjects)
	projects.Get("/featured", s.GetFeaturedProjects)
	projects.Get("/:id", s.GetProject)

	// Premade project catalog
	premade := api.Group("/premade-projects")
	premade.Get("/", s.GetPremadeProjects)
	premade.Post("/:id/purchase-intent", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "purchase_intent"), s.RegisterPremadeInterest)
	premade.Get("/:id", s.GetPremadeProject)

	// Tutorials
	tutorials := api.Group("/tutorials")
	tutorials.Get("/", s.GetTutorials)
	tutorials.Get("/:id", s.GetTutorial)

	// Community feed
	community := api.Group("/community")
	community.Get("/posts", s.GetCommunityPosts)
	community.Get("/posts/:id/comments", s.GetPostComments)
	community.Post("/posts/:id/comments", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_comment"), s.CreatePostComment)
	community.Get("/posts/:id", s.GetCommunityPost)

	// Team-up board
	teamUp := api.Group("/team-up")
	teamUp.Get("/", s.GetTeamUpListings)
	teamUp.Post("/", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "create_listing"), s.CreateTeamUpListing)
	teamUp.Post("/:id/apply", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "apply_listing"), s.ApplyToTeamUpListing)
	teamUp.Get("/:id", s.GetTeamUpListing)

	// Assistant sessions
	sessions := api.Group("/assistant/sessions")
	sessions.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "assistant_session"), s.CreateAssistantSession)
	sessions.Post("/:id/messages", middleware.RateLimit(
		s.redis, 20, time.Minute, "assistant_message"), s.SubmitAssistantQuery)
	sessions.Get("/:id", s.GetAssistantSession)
	sessions.Delete("/:id", s.DeleteAssistantSession)

	// Admin routes
	admin := api.Group("/admin", s.AuthRequired())
	admin.Post("/projects", s.CreateProject)
	admin.Put("/projects/:id", s.UpdateProject)
	admin.Delete("/projects/:id", s.DeleteProject)
	admin.Post("/premade-projects", s.CreatePremadeProject)
	admin.Put("/premade-projects/:id", s.UpdatePremadeProject)
	admin.Delete("/premade-projects/:id", s.DeletePremadeProject)
	admin.Post("/tutorials", s.CreateTutorial)
	admin.Put("/tutorials/:id", s.UpdateTutorial)
	admin.Delete("/tutorials/:id", s.DeleteTutorial)
	admin.Post("/community/posts", s.CreateCommunityPost)
	admin.Delete("/community/posts/:id", s.DeleteCommunityPost)
	admin.Delete("/team-up/:id", s.DeleteTeamUpListing)
}

// HealthCheck is a legacy/simple alias for ReadinessCheck
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return s.ReadinessCheck(c)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The catalog works without Redis, just slower.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "TinkerLab API",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware guarding the admin
// surface. There is a single operator subject; any valid token is an admin.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "tinkerlab-api" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "tinkerlab-client" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}
		if sub, subOk := claims["sub"].(string); !subOk || sub != "admin" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		// Check JTI for revocation
		if jti, exists := claims["jti"].(string); exists && jti != "" && s.redis != nil {
			isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
			if err == nil && isBlacklisted > 0 {
				return models.RespondWithError(c, fiber.StatusUnauthorized,
					models.NewUnauthorizedError("Token has been revoked"))
			}
		}

		c.Locals("admin", true)
		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	app := fiber.New(fiber.Config{
		AppName: "TinkerLab API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	// Reap transcripts of sessions idle past their TTL.
	go s.sessions.StartSweeper(s.shutdownCtx, 5*time.Minute)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
