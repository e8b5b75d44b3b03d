package routes

import (
	"smartlining-api/internal/adapters/http/handlers"
	"smartlining-api/internal/adapters/http/middleware"
	"smartlining-api/internal/adapters/persistence/repositories"
	"smartlining-api/internal/config"
	"smartlining-api/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cache *redis.Client, cfg *config.Config) {
	// Initialize repositories
	usuarioRepo := repositories.NewUsuarioRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	clienteRepo := repositories.NewClienteRepository(db)
	colaRepo := repositories.NewColaRepository(db)
	turnoRepo := repositories.NewTurnoRepository(db)
	atencionRepo := repositories.NewAtencionRepository(db)
	valoracionRepo := repositories.NewValoracionRepository(db)
	eventoRepo := repositories.NewEventoRepository(db)
	horarioRepo := repositories.NewHorarioRepository(db)

	// Initialize services
	authService := services.NewAuthService(usuarioRepo, refreshTokenRepo, cfg)
	usuarioService := services.NewUsuarioService(usuarioRepo)
	clienteService := services.NewClienteService(clienteRepo)
	colaService := services.NewColaService(colaRepo)
	turnoService := services.NewTurnoService(turnoRepo, colaRepo, clienteRepo)
	queueInfoService := services.NewQueueInfoService(colaRepo, turnoRepo, cache)
	atencionService := services.NewAtencionService(atencionRepo, turnoRepo, usuarioRepo)
	valoracionService := services.NewValoracionService(valoracionRepo, turnoRepo)
	eventoService := services.NewEventoService(eventoRepo, colaRepo)
	horarioService := services.NewHorarioService(horarioRepo, colaRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService)
	clienteHandler := handlers.NewClienteHandler(clienteService)
	colaHandler := handlers.NewColaHandler(colaService)
	turnoHandler := handlers.NewTurnoHandler(turnoService)
	queueInfoHandler := handlers.NewQueueInfoHandler(queueInfoService)
	atencionHandler := handlers.NewAtencionHandler(atencionService)
	valoracionHandler := handlers.NewValoracionHandler(valoracionService)
	eventoHandler := handlers.NewEventoHandler(eventoService)
	horarioHandler := handlers.NewHorarioHandler(horarioService)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", healthHandler.Check)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Usuario routes (admin only)
	usuarios := api.Group("/usuarios", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/:id", usuarioHandler.Get)
	usuarios.Patch("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Cliente routes (public: customers join via QR without accounts)
	clientes := api.Group("/clientes")
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.Get)

	// Cola routes (reads public for the kiosk/SPA, writes admin only)
	colas := api.Group("/colas")
	colas.Get("/", colaHandler.List)
	colas.Get("/activas", colaHandler.ListActivas)
	colas.Get("/:id", colaHandler.Get)
	colas.Post("/", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), colaHandler.Create)
	colas.Patch("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), colaHandler.Update)
	colas.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), colaHandler.Delete)

	// Turno routes (creation public, transitions staff only)
	turnos := api.Group("/turnos")
	turnos.Get("/", turnoHandler.List)
	turnos.Post("/", turnoHandler.Create)
	turnos.Get("/cliente/:clienteId", turnoHandler.ListByCliente)
	turnos.Get("/:id", turnoHandler.Get)
	turnos.Patch("/:id", middleware.AuthMiddleware(cfg), middleware.EmpleadoOrAdmin(), turnoHandler.Update)
	turnos.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), turnoHandler.Delete)

	// Queue info (public polling endpoint)
	api.Get("/queue-info/:colaId", middleware.NoCacheHeaders(), queueInfoHandler.Get)

	// Atencion routes (staff only)
	atenciones := api.Group("/atenciones", middleware.AuthMiddleware(cfg), middleware.EmpleadoOrAdmin())
	atenciones.Get("/", atencionHandler.List)
	atenciones.Post("/", atencionHandler.Create)
	atenciones.Get("/:id", atencionHandler.Get)
	atenciones.Patch("/:id", atencionHandler.Update)

	// Valoracion routes (creation public: customers rate after service)
	valoraciones := api.Group("/valoraciones")
	valoraciones.Post("/", valoracionHandler.Create)
	valoraciones.Get("/turno/:turnoId", valoracionHandler.GetByTurno)
	valoraciones.Get("/", middleware.AuthMiddleware(cfg), middleware.EmpleadoOrAdmin(), valoracionHandler.List)
	valoraciones.Get("/:id", valoracionHandler.Get)
	valoraciones.Patch("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), valoracionHandler.Update)
	valoraciones.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), valoracionHandler.Delete)

	// Evento routes (reads public, writes admin only)
	eventos := api.Group("/eventos")
	eventos.Get("/", eventoHandler.List)
	eventos.Get("/:id", eventoHandler.Get)
	eventos.Post("/", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), eventoHandler.Create)
	eventos.Patch("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), eventoHandler.Update)
	eventos.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), eventoHandler.Delete)

	// Horario routes (reads public, writes admin only)
	horarios := api.Group("/horarios-cola")
	horarios.Get("/:colaId", horarioHandler.ListByCola)
	horarios.Post("/:colaId", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), horarioHandler.Create)
	horarios.Patch("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), horarioHandler.Update)
	horarios.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), horarioHandler.Delete)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "NOT_FOUND",
			"message": "Route not found",
		})
	})
}
