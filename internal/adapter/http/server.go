package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/couchcryptid/astronaut-etl/internal/domain"
)

// ReportProvider returns the most recent run report, if any.
type ReportProvider interface {
	Latest() (domain.RunReport, bool)
}

// Server exposes the operational endpoints and the read-only report API.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and the
// /v1 report routes. rps limits the /v1 routes; zero disables the limit.
func NewServer(addr string, ready sharedobs.ReadinessChecker, reports ReportProvider, rps int, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", gin.WrapF(sharedobs.LivenessHandler()))
	router.GET("/readyz", gin.WrapF(sharedobs.ReadinessHandler(ready)))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	v1.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))
	if rps > 0 {
		v1.Use(rateLimit(rps))
	}

	h := &handler{reports: reports}
	v1.GET("/report", h.report)
	v1.GET("/spacecraft", h.catalog)
	v1.GET("/spacecraft/:craft", h.spacecraft)
	v1.GET("/weather-codes/:code", h.weatherCode)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type handler struct {
	reports ReportProvider
}

func (h *handler) report(c *gin.Context) {
	report, ok := h.reports.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no run has completed yet"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *handler) catalog(c *gin.Context) {
	crafts := domain.KnownCrafts()
	out := make(map[string]domain.SpacecraftInfo, len(crafts))
	for _, craft := range crafts {
		out[craft], _ = domain.LookupSpacecraft(craft)
	}
	c.JSON(http.StatusOK, out)
}

// spacecraft always answers 200; unknown crafts get the sentinel record.
func (h *handler) spacecraft(c *gin.Context) {
	craft := c.Param("craft")
	info, known := domain.LookupSpacecraft(craft)
	c.JSON(http.StatusOK, gin.H{
		"craft":      craft,
		"known":      known,
		"spacecraft": info,
	})
}

func (h *handler) weatherCode(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weather code must be an integer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":        code,
		"description": domain.DecodeWeatherCode(code),
	})
}

func rateLimit(rps int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), rps)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
