package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orchidbreed/app"
	"orchidbreed/internal"
	"orchidbreed/internal/usage"
)

// Server is the HTTP transport in front of the breeding service
type Server struct {
	router  *gin.Engine
	service *app.BreedingService
	usage   *usage.Service
	logger  *internal.Logger
}

// NewServer builds the router. usageService may be nil, in which case /api/usage is not served.
func NewServer(service *app.BreedingService, usageService *usage.Service, logger *internal.Logger) *Server {
	s := &Server{
		router:  gin.Default(),
		service: service,
		usage:   usageService,
		logger:  logger.With("API"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/pairs/:a/:b", s.handleAssessPair)
	api.GET("/specimens/:id/partners", s.handleFindPartners)
	api.POST("/programs", s.handleAnalyzeProgram)
	api.GET("/programs/:id", s.handleGetReport)
	api.GET("/programs/:id/export", s.handleExportReport)
	if s.usage != nil {
		api.GET("/usage", s.handleUsage)
	}
}

// Handler exposes the router for tests and custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"enrichment": s.service.EnrichmentEnabled(),
	})
}
