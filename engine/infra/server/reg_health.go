package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/router"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/routes"
)

func registerHealth(r gin.IRouter) {
	// GET /health
	// Liveness check; does not touch the store
	r.GET(routes.Health(), healthHandler)

	// GET /favicon.ico
	r.GET(routes.Favicon(), faviconHandler)
}

// healthHandler handles GET /health.
//
// @Summary Liveness check
// @Tags operations
// @Produce json
// @Success 200 {object} map[string]string "Service is up"
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Empty favicon
// @Tags operations
// @Success 204 "No content"
// @Router /favicon.ico [get]
func faviconHandler(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func notFoundHandler(c *gin.Context) {
	router.RespondProblemWithCode(c, http.StatusNotFound, router.ErrNotFoundCode, "route not found")
}
