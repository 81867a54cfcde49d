package sectionrouter

import (
	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/routes"
)

func Register(r gin.IRouter) {
	// GET /sections
	// Categories with their channels
	r.GET(routes.Sections(), listSections)

	// GET /lore/sections
	// Flat list of sections
	r.GET(routes.LoreSections(), listLoreSections)
}
