package handlers

import (
	"context"
	"net/http"
	"time"

	"travelapi/internal/repositories"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	Store  repositories.Store
	Driver string
	// Engine is set once the router is built; /api/routes reads it.
	Engine *gin.Engine
}

func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "degraded",
			"store":   h.Driver,
			"message": "Store unreachable",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": h.Driver})
}

func (h *SystemHandler) Routes(c *gin.Context) {
	if h.Engine == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Router not ready"})
		return
	}

	routes := h.Engine.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
