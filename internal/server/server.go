// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"hireflow/internal/cache"
	"hireflow/internal/config"
	"hireflow/internal/database"
	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/pricing"
	"hireflow/internal/repository"
	"hireflow/internal/service"
	"hireflow/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config        *config.Config
	db            *gorm.DB
	redis         *redis.Client
	userRepo      repository.UserRepository
	adminRepo     repository.AdminRepository
	projectRepo   repository.ProjectRepository
	portfolioRepo repository.PortfolioRepository
	contactRepo   repository.ContactRepository
	projectSvc    *service.ProjectService
	sessions      *session.Manager
	catalog       *pricing.Catalog
	prom          *fiberprometheus.FiberPrometheus
}

// NewServer creates a server instance, connecting to the database and Redis.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient), nil
}

// NewServerWithDeps wires a server over already-constructed infrastructure.
// Tests use it to substitute sqlite and miniredis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	table := pricing.DefaultTable()
	catalog := pricing.DefaultCatalog()

	return &Server{
		config:        cfg,
		db:            db,
		redis:         redisClient,
		userRepo:      userRepo,
		adminRepo:     repository.NewAdminRepository(db),
		projectRepo:   projectRepo,
		portfolioRepo: repository.NewPortfolioRepository(db),
		contactRepo:   repository.NewContactRepository(db),
		projectSvc:    service.NewProjectService(userRepo, projectRepo, table, catalog),
		sessions:      session.NewManager(redisClient),
		catalog:       catalog,
		prom:          middleware.InitMetrics("hireflow"),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	// Security headers
	app.Use(helmet.New())

	app.Use(middleware.StructuredLogger())

	if s.prom != nil {
		s.prom.RegisterAt(app, "/metrics")
		app.Use(middleware.MetricsMiddleware(s.prom))
	}

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	// Credentials must be allowed: the whole auth model rides on cookies.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Root)
	app.Get("/health", s.HealthCheck)

	// Client auth
	app.Post("/register", s.Register)
	app.Post("/login", s.Login)
	app.Post("/logout", s.Logout)
	app.Get("/check-session", s.CheckSession)
	app.Post("/forgot-password", s.ForgotPassword)
	app.Post("/reset-password", s.ResetPassword)

	// Anonymous hire form: creates the account and the project together.
	app.Post("/hire", s.Hire)

	// Public pricing schema for the hire form
	app.Get("/pricing/:category", s.GetPricingSchema)

	// Public portfolio and contact
	app.Get("/portfolio-projects", s.GetPortfolioProjects)
	app.Get("/portfolio-projects/:id", s.GetPortfolioProject)
	app.Post("/contact", s.Contact)

	// Client-gated project routes
	app.Post("/add-project", s.UserRequired(), s.AddProject)
	app.Get("/user-projects", s.UserRequired(), s.GetUserProjects)

	// Admin auth
	app.Post("/admin/register", s.AdminRegister)
	app.Post("/admin/login", s.AdminLogin)
	app.Post("/admin/logout", s.AdminLogout)
	app.Get("/admin/check-session", s.AdminCheckSession)

	// Admin-gated routes
	admin := app.Group("/admin", s.AdminRequired())
	admin.Get("/stats", s.AdminStats)
	admin.Get("/portfolio-stats", s.AdminPortfolioStats)
	admin.Post("/projects", s.AdminCreateProject)
	admin.Get("/projects", s.AdminListProjects)
	admin.Get("/projects/:id", s.AdminGetProject)
	admin.Put("/projects/:id/status", s.AdminUpdateProjectStatus)
	admin.Delete("/projects/:id", s.AdminDeleteProject)
	admin.Get("/portfolio-projects", s.AdminListPortfolioProjects)
	admin.Post("/portfolio-projects", s.AdminCreatePortfolioProject)
	admin.Put("/portfolio-projects/:id", s.AdminUpdatePortfolioProject)
	admin.Delete("/portfolio-projects/:id", s.AdminDeletePortfolioProject)
}

// Root answers the bare health probe used by uptime checks.
func (s *Server) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Hireflow API",
	})
}

// HealthCheck reports database and Redis connectivity.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
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
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"status":  "healthy",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// UserRequired gates a route on a live client session. The resolved identity
// is stored in locals for the handler.
func (s *Server) UserRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := s.sessions.Get(c.Context(), session.DomainClient, c.Cookies(session.ClientCookie))
		if err != nil {
			return models.RespondWithError(c, models.NewUnauthorizedError("Unauthorized"))
		}
		c.Locals("userID", ident.ID)
		c.Locals("userIdentity", ident)
		return c.Next()
	}
}

// AdminRequired gates a route on a live admin session. A client session does
// not pass here: the two domains never cross.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := s.sessions.Get(c.Context(), session.DomainAdmin, c.Cookies(session.AdminCookie))
		if err != nil {
			return models.RespondWithError(c, models.NewUnauthorizedError("Admin authentication required"))
		}
		c.Locals("adminID", ident.ID)
		c.Locals("adminIdentity", ident)
		return c.Next()
	}
}

// App builds the configured Fiber application.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Hireflow API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, err)
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start starts the server.
func (s *Server) Start() error {
	app := s.App()
	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown closes the database and Redis connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.Error("error closing sql DB", "error", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.Error("error closing redis", "error", rerr)
		}
	}

	middleware.Logger.InfoContext(ctx, "server shutdown complete")
	return nil
}
