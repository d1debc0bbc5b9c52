// Package server exposes the string analysis service over HTTP.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duynguyendang/stringlab/pkg/service"
)

// Server holds the state for the REST API server.
type Server struct {
	strings *service.StringService
	logger  *zap.SugaredLogger
	router  *gin.Engine
}

// NewServer creates a new Server instance.
func NewServer(strings *service.StringService, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	r := gin.New()
	r.Use(gin.Recovery())
	s := &Server{
		strings: strings,
		logger:  logger,
		router:  r,
	}
	r.Use(corsMiddleware(), requestContextMiddleware(logger))
	s.setupRoutes()
	return s
}

// Run starts the server on the specified address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.welcome)
	s.router.GET("/health", s.healthCheck)

	// The static filter route must coexist with the :value param
	// route; gin resolves static segments with priority.
	s.router.POST("/strings", s.createString)
	s.router.GET("/strings", s.filterStrings)
	s.router.GET("/strings/filter-by-natural-language", s.filterByNaturalLanguage)
	s.router.GET("/strings/:value", s.readString)
	s.router.DELETE("/strings/:value", s.deleteString)
}

func (s *Server) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the String Analysis API"})
}

// Health check
func (s *Server) healthCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}
