// Package server exposes document assembly over HTTP.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aiclex/crux-invoice/internal/assemble"
	"github.com/aiclex/crux-invoice/internal/config"
	"github.com/aiclex/crux-invoice/internal/model"
	"github.com/aiclex/crux-invoice/internal/money"
	"github.com/aiclex/crux-invoice/internal/registry"
	"github.com/aiclex/crux-invoice/internal/render"
	"github.com/aiclex/crux-invoice/internal/words"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	assembler *assemble.Assembler
	renderer  *render.Renderer
	clients   *registry.Directory
	log       *zap.Logger
}

// NewServer creates a new API server for the given seller profile. The
// client directory may be nil when no client file was loaded.
func NewServer(cfg *Config, company config.CompanyProfile, clients *registry.Directory, log *zap.Logger) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if clients == nil {
		clients = registry.NewDirectory()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:    cfg,
		router:    router,
		assembler: assemble.New(company),
		renderer:  render.New(),
		clients:   clients,
		log:       log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices/assemble", s.handleAssemble)
		v1.POST("/invoices/render", s.handleRender)
		v1.POST("/words", s.handleWords)
		v1.GET("/clients", s.handleClients)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.log.Info("listening", zap.String("address", s.config.Address))
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers and tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// bindRequest decodes an invoice request, filling in the client record
// from the directory when only a client name was sent.
func (s *Server) bindRequest(c *gin.Context) (model.InvoiceRequest, bool) {
	var req model.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return req, false
	}

	if req.Client.GSTIN == "" && req.Client.Address == "" {
		if known, ok := s.clients.Lookup(req.Client.Name); ok {
			req.Client = known.Party()
			if len(req.Items) == 0 {
				req.Items = known.Rows()
			}
		}
	}

	return req, true
}

func (s *Server) handleAssemble(c *gin.Context) {
	req, ok := s.bindRequest(c)
	if !ok {
		return
	}

	doc, err := s.assembler.Assemble(req)
	if err != nil {
		s.respondAssemblyError(c, err)
		return
	}

	c.JSON(http.StatusOK, AssembleResponse{Document: doc})
}

func (s *Server) handleRender(c *gin.Context) {
	req, ok := s.bindRequest(c)
	if !ok {
		return
	}

	doc, err := s.assembler.Assemble(req)
	if err != nil {
		s.respondAssemblyError(c, err)
		return
	}

	pdf, err := s.renderer.Render(doc)
	if err != nil {
		s.log.Error("render failed", zap.String("invoice", req.Number), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "pdf generation failed", Details: err.Error()})
		return
	}

	s.log.Info("invoice rendered",
		zap.String("invoice", doc.Number),
		zap.String("regime", string(doc.Tax.Regime)),
		zap.Int("bytes", len(pdf)))

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(doc.Number+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (s *Server) handleWords(c *gin.Context) {
	var req WordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	amount, err := money.FromString(req.Amount)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "amount is not numeric", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, WordsResponse{
		Amount: money.Format(amount),
		Words:  words.Rupees(amount),
	})
}

func (s *Server) handleClients(c *gin.Context) {
	c.JSON(http.StatusOK, ClientsResponse{Clients: s.clients.Names()})
}

func (s *Server) respondAssemblyError(c *gin.Context, err error) {
	var asmErr *model.AssemblyError
	if errors.As(err, &asmErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: asmErr.Message, Field: asmErr.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
