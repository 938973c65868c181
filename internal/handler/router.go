package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"candidate-assistance/internal/domain/actor"
	"candidate-assistance/internal/handler/api"
	"candidate-assistance/internal/handler/middleware"
	"candidate-assistance/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	gatherer prometheus.Gatherer,
	assistanceHandler *api.AssistanceHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, gatherer, assistanceHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h *api.AssistanceHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireRoleAtLeast(actor.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(actor.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.ListServices},
		})

		svc := apiGroup.Group("/services/:provider/:serviceCode")
		addRoutes(svc, []route{
			{Method: http.MethodPost, Path: "/candidates/:candidateId/assignments", Handler: h.AssignToCandidate, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/candidates/number/:candidateNumber/reassign", Handler: h.ReassignForCandidate, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/lists/:listId/assignments", Handler: h.AssignToList, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodGet, Path: "/candidates/:candidateId/assignments", Handler: h.GetAssignmentsForCandidate},
			{Method: http.MethodGet, Path: "/candidates/:candidateId/resources", Handler: h.GetResourcesForCandidate},
			{Method: http.MethodGet, Path: "/resources/available", Handler: h.GetAvailableResources},
			{Method: http.MethodGet, Path: "/resources/available/count", Handler: h.CountAvailable},
			{Method: http.MethodGet, Path: "/resources/:code", Handler: h.GetResourceForResourceCode},
			{Method: http.MethodGet, Path: "/resources/:code/candidate", Handler: h.GetCandidateForResourceCode},
			{Method: http.MethodPut, Path: "/resources/:code/status", Handler: h.UpdateResourceStatus, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/resources/expire", Handler: h.ExpireOverdueResources, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/inventory", Handler: h.ImportInventory, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPost, Path: "/inventory/bucket", Handler: h.ImportInventoryFromBucket, Mw: []gin.HandlerFunc{admin}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
