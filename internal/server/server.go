// Package server provides the HTTP API for the personal assistant.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"personal-assistant/internal/auth"
	"personal-assistant/internal/config"
	"personal-assistant/internal/mcp"
	"personal-assistant/internal/services"
)

// Server hosts the HTTP API over the assistant's services.
type Server struct {
	echo         *echo.Echo
	logger       *zap.Logger
	config       *config.Config
	sprints      services.SprintService
	projects     services.ProjectService
	rituals      services.RitualService
	tokenService *auth.TokenService
	mcpClient    *mcp.Client
}

// New creates the HTTP server and registers all routes.
func New(
	cfg *config.Config,
	logger *zap.Logger,
	sprints services.SprintService,
	projects services.ProjectService,
	rituals services.RitualService,
	tokenService *auth.TokenService,
	mcpClient *mcp.Client,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:         e,
		logger:       logger,
		config:       cfg,
		sprints:      sprints,
		projects:     projects,
		rituals:      rituals,
		tokenService: tokenService,
		mcpClient:    mcpClient,
	}

	e.HTTPErrorHandler = s.handleError
	s.registerRoutes()

	return s
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleRoot)
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/debug/cors", s.handleDebugCORS)
	s.echo.GET("/test/cors", s.handleTestCORS)

	authGroup := s.echo.Group("/api/auth")
	authGroup.POST("/register", s.handleRegister)
	authGroup.POST("/login", s.handleLogin)
	authGroup.GET("/me", s.handleMe)

	assistant := s.echo.Group("/api/assistant")
	assistant.POST("/sprint/start", s.handleStartSprint)
	assistant.GET("/sprint/active", s.handleActiveSprint)
	assistant.GET("/sprint/all", s.handleListSprints)
	assistant.POST("/sprint/:id/nudge", s.handleNudge)
	assistant.POST("/sprint/:id/distraction", s.handleLogDistraction)
	assistant.POST("/sprint/:id/complete", s.handleCompleteSprint)
	assistant.POST("/mcp/tool", s.handleMCPTool)
	assistant.GET("/rituals/:name", s.handleRitual)
	assistant.GET("/family/reminders", s.handleFamilyReminders)

	projects := s.echo.Group("/api/projects")
	projects.GET("", s.handleListProjects)
	projects.GET("/", s.handleListProjects)
	projects.POST("", s.handleCreateProject)
	projects.POST("/", s.handleCreateProject)
	projects.GET("/priority/:priority", s.handleProjectsByPriority)
	projects.GET("/status/:status", s.handleProjectsByStatus)
	projects.GET("/:id", s.handleGetProject)
	projects.PUT("/:id", s.handleUpdateProject)
	projects.DELETE("/:id", s.handleDeleteProject)
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message: s.config.App.Name + " API",
		Version: s.config.App.Version,
	})
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: s.config.App.Name,
	})
}

func (s *Server) handleDebugCORS(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"allowed_origins": s.config.Server.CORSOrigins,
		"production":      s.config.App.Production,
	})
}

func (s *Server) handleTestCORS(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "CORS test endpoint",
		"origin":  c.Request().Header.Get(echo.HeaderOrigin),
	})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := s.config.Addr()
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
