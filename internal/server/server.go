package server

import (
	"context"
	"net/http"

	"github.com/Emersonn00/arevoapp/internal/arena"
	"github.com/Emersonn00/arevoapp/internal/auth"
	"github.com/Emersonn00/arevoapp/internal/capacity"
	"github.com/Emersonn00/arevoapp/internal/class"
	"github.com/Emersonn00/arevoapp/internal/config"
	"github.com/Emersonn00/arevoapp/internal/email"
	"github.com/Emersonn00/arevoapp/internal/enrollment"
	"github.com/Emersonn00/arevoapp/internal/payment"
	"github.com/Emersonn00/arevoapp/internal/tournament"
	"github.com/Emersonn00/arevoapp/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, clock clockwork.Clock) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	sched := class.NewSchedule(clock)
	capClient := capacity.NewClient(db)

	userService := user.NewService(user.NewRepository(db), cfg.JWTSecret)
	userHandler := user.NewHandler(userService)

	arenaService := arena.NewService(arena.NewRepository(db))
	arenaHandler := arena.NewHandler(arenaService)

	classRepo := class.NewRepository(db)
	classService := class.NewService(classRepo, capClient, sched)
	classHandler := class.NewHandler(classService)

	paymentService := payment.NewService(payment.NewRepository(db), payment.DisabledSheet{}, clock)
	paymentHandler := payment.NewHandler(paymentService)

	enrollmentService := enrollment.NewService(
		enrollment.NewRepository(db),
		classRepo, arenaService, userService,
		capClient, sched, paymentService, emailService,
	)
	enrollmentHandler := enrollment.NewHandler(enrollmentService)

	tournamentService := tournament.NewService(tournament.NewRepository(db), sched)
	tournamentHandler := tournament.NewHandler(tournamentService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.PUT("/me", userHandler.UpdateMe)

		protected.GET("/arenas", arenaHandler.ListArenas)
		protected.GET("/arenas/:arenaID/ban-status", arenaHandler.BanStatus)
		protected.GET("/arenas/:arenaID/classes", classHandler.ListForDate)
		protected.GET("/arenas/:arenaID/class-dates", classHandler.AvailableDates)
		protected.GET("/arenas/:arenaID/tournaments", tournamentHandler.ListByArena)

		protected.POST("/enrollments", enrollmentHandler.Enroll)
		protected.GET("/enrollments", enrollmentHandler.ListMine)
		protected.DELETE("/enrollments", enrollmentHandler.Cancel)

		protected.POST("/payments/checkout", paymentHandler.StartCheckout)
		protected.GET("/payments/status", paymentHandler.Status)
		protected.GET("/payments/await", paymentHandler.Await)
		protected.POST("/payments/cancel", paymentHandler.Cancel)

		protected.GET("/tournaments/:id", tournamentHandler.Get)
		protected.GET("/tournaments/:id/categories", tournamentHandler.ListCategories)
		protected.GET("/categories/:categoryID/matches", tournamentHandler.Bracket)
		protected.POST("/categories/:categoryID/draw", tournamentHandler.Draw)
		protected.POST("/matches/:matchID/score", tournamentHandler.EnterScore)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/arenas", arenaHandler.CreateArena)
		admin.POST("/classes", classHandler.CreateTemplate)
	}

	// Settlement webhooks come from the payment provider, not a signed-in
	// user; the provider authenticates with a shared secret header.
	router.POST("/payments/webhook", paymentHandler.Webhook(cfg.WebhookSecret))

	router.GET("/health", Health(db))
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
