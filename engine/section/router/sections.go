package sectionrouter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/router"
)

// listSections handles GET /sections.
//
// @Summary List sections by category
// @Description Returns the fixed category list with its channels in display order.
// @Tags sections
// @Produce json
// @Success 200 {array} section.Category "Categories retrieved"
// @Failure 500 {object} core.ProblemDocument "Internal server error"
// @Router /sections [get]
func listSections(c *gin.Context) {
	appState := router.GetAppState(c)
	if appState == nil {
		return
	}
	c.JSON(http.StatusOK, appState.Sections.Categories())
}

// listLoreSections handles GET /lore/sections.
//
// @Summary List sections flat
// @Tags sections
// @Produce json
// @Success 200 {array} section.Section "Sections retrieved"
// @Failure 500 {object} core.ProblemDocument "Internal server error"
// @Router /lore/sections [get]
func listLoreSections(c *gin.Context) {
	appState := router.GetAppState(c)
	if appState == nil {
		return
	}
	c.JSON(http.StatusOK, appState.Sections.Sections())
}
