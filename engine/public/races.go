// Package public serves the static documents readable without an account.
package public

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/routes"
)

// Document is a titled markdown page.
type Document struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Races returns the public races page.
func Races() Document {
	return Document{
		Title: "Mortisian Kingdom — Races",
		Content: "This page is **public** and is manually entered.\n\n" +
			"Add your Mortisian Kingdom Race Doc text here as you build it out.\n",
	}
}

func Register(r gin.IRouter) {
	// GET /public/races
	r.GET(routes.PublicRaces(), getRaces)
}

// getRaces handles GET /public/races.
//
// @Summary Public races page
// @Tags public
// @Produce json
// @Success 200 {object} public.Document "Races page"
// @Router /public/races [get]
func getRaces(c *gin.Context) {
	c.JSON(http.StatusOK, Races())
}
