package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/payroute/payroute-backend/internal/domain"
	"github.com/payroute/payroute-backend/internal/usecase/planner"
)

// RouteHandler serves the route planning API
type RouteHandler struct {
	logger  *zap.Logger
	service *planner.RoutePlanService
}

// NewRouteHandler creates a new RouteHandler instance
func NewRouteHandler(logger *zap.Logger, service *planner.RoutePlanService) *RouteHandler {
	return &RouteHandler{logger: logger, service: service}
}

// RegisterRoutes registers route planning endpoints on the provided Gin group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/routes/plan", h.PlanRoutes)
}

// PlanRoutes handles one user-initiated calculation: it decodes the candidate
// batch, runs the selection engine against the reference timestamp, and
// returns the cheapest, fastest and recommended routes with their reasoning.
func (h *RouteHandler) PlanRoutes(c *gin.Context) {
	var req PlanRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    ErrInvalidInput,
			Message: "invalid request body",
			Details: err.Error(),
		})
		return
	}

	routes, err := toDomainRoutes(req.Routes)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    ErrInvalidInput,
			Message: "invalid route batch",
			Details: err.Error(),
		})
		return
	}

	// The engine never reads a clock; the edge supplies the reference time
	now := time.Now()
	if req.ReferenceTime != nil {
		now = *req.ReferenceTime
	}

	plan, err := h.service.PlanRoutes(c.Request.Context(), routes, now)
	if err != nil {
		h.writePlanError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlanRoutesResponse{
		Cheapest:    toRouteResponse(plan.Cheapest),
		Fastest:     toRouteResponse(plan.Fastest),
		Recommended: toRouteResponse(plan.Recommended),
	})
}

// writePlanError maps engine errors to HTTP status codes
func (h *RouteHandler) writePlanError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrEmptyBatch) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    ErrEmptyBatch,
			Message: "no candidate routes supplied",
		})
		return
	}

	if strings.Contains(err.Error(), "invalid route") {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    ErrInvalidInput,
			Message: "invalid route batch",
			Details: err.Error(),
		})
		return
	}

	h.logger.Error("route planning failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    ErrServerError,
		Message: "failed to plan routes",
	})
}

// BaseHandler serves liveness and metrics endpoints
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a new BaseHandler instance
func NewBaseHandler(logger *zap.Logger) *BaseHandler {
	return &BaseHandler{logger: logger}
}

// RegisterRoutes registers base routes on the provided Gin engine.
func (b *BaseHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", b.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (b *BaseHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
