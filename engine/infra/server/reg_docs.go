package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/docs"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/router"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	swaggerJSONPath                   = "/swagger.json"
	swaggerModelsExpandDepthCollapsed = -1
)

// setupSwaggerAndDocs wires up Swagger UI and the swagger document.
func setupSwaggerAndDocs(r *gin.Engine) {
	configureSwaggerInfo()
	registerDocsUI(r)
	registerSwaggerRedirect(r)
	r.GET(swaggerJSONPath, swaggerJSONHandler)
}

func configureSwaggerInfo() {
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
}

func registerDocsUI(r *gin.Engine) {
	r.GET("/docs/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(swaggerJSONPath),
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		ginSwagger.DefaultModelsExpandDepth(swaggerModelsExpandDepthCollapsed),
	))
}

func registerSwaggerRedirect(r *gin.Engine) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}

func swaggerJSONHandler(c *gin.Context) {
	raw := docs.SwaggerInfo.ReadDoc()
	if raw == "" || !json.Valid([]byte(raw)) {
		router.RespondInternalError(c, errors.New("swagger document not available or invalid"))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(raw))
}
