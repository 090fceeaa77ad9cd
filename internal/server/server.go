package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"inventory/internal/database"
	"inventory/internal/handlers"
	"inventory/internal/metrics"
	"inventory/internal/repositories"
	"inventory/internal/services"
	"inventory/pkg/logger"
)

// Deps is everything the HTTP app is built from. Nothing is read from globals.
type Deps struct {
	DB           *gorm.DB
	Mail         services.MailSender
	Notification services.NotificationConfig
	CORSOrigin   string
	Logger       *logger.Logger
	// Registry receives the app's collectors and backs GET /metrics. Optional.
	Registry *prometheus.Registry
	// AccessLog enables one log line per request.
	AccessLog bool
}

// New wires repositories, services and handlers into a Fiber app.
func New(deps Deps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(log),
	})

	m := metrics.New(nil)
	if deps.Registry != nil {
		m = metrics.New(deps.Registry)
	}

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(func(c *fiber.Ctx) error {
		requestID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		c.SetUserContext(log.WithRequestID(c.UserContext(), requestID))
		return c.Next()
	})
	if deps.AccessLog {
		app.Use(fiberlogger.New())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigin,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))
	app.Use(m.Middleware())

	// --- Repositories, services, handlers ---
	supplierRepo := repositories.NewGORMSupplierRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)

	supplierService := services.NewSupplierService(supplierRepo)
	productService := services.NewProductService(productRepo, supplierRepo)
	notificationService := services.NewNotificationService(productRepo, deps.Mail, deps.Notification, m)

	validate := handlers.NewValidator()
	handlers.NewSupplierHandler(supplierService, validate).RegisterRoutes(app)
	handlers.NewProductHandler(productService, validate).RegisterRoutes(app)
	handlers.NewEmailHandler(notificationService, validate, log).RegisterRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"Msg": "Hello, World!"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, deps.DB); err != nil {
			log.Warn(ctx, "health check: database unreachable", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "unreachable",
			})
		}
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "connected",
		})
	})

	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	return app
}
