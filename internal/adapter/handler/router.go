package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	interviewHandler *Interview
	aiController     *AIController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, interviewHandler *Interview, aiController *AIController) *Router {
	return &Router{
		cfg:              cfg,
		interviewHandler: interviewHandler,
		aiController:     aiController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupInterviewRoutes(v1)
	rt.setupAIRoutes(v1)
}

// setupInterviewRoutes configures analysis and report routes
func (rt *Router) setupInterviewRoutes(g *echo.Group) {
	interviewGroup := g.Group("/interviews")

	if rt.interviewHandler != nil {
		interviewGroup.POST("/analyze", rt.interviewHandler.Analyze)
		interviewGroup.GET("/reports/:id", rt.interviewHandler.GetReport)
	} else {
		interviewGroup.POST("/analyze", rt.notImplemented)
		interviewGroup.GET("/reports/:id", rt.notImplemented)
	}
}

// setupAIRoutes configures generative AI routes
func (rt *Router) setupAIRoutes(g *echo.Group) {
	aiGroup := g.Group("/ai")

	if rt.aiController != nil {
		aiGroup.POST("/feedback", rt.aiController.GenerateFeedback)
		aiGroup.GET("/diagnostics", rt.aiController.Diagnostics)
	} else {
		aiGroup.POST("/feedback", rt.notImplemented)
		aiGroup.GET("/diagnostics", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
