package server

import (
	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/middleware/size"
	postrouter "github.com/reikouwu/House-Liber-Arce/engine/post/router"
	"github.com/reikouwu/House-Liber-Arce/engine/public"
	sectionrouter "github.com/reikouwu/House-Liber-Arce/engine/section/router"
)

// RegisterRoutes mounts every board endpoint on r.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	registerHealth(r)
	sectionrouter.Register(r)
	createMiddleware := []gin.HandlerFunc{size.BodySizeLimiter(s.config.Server.MaxBodyBytes)}
	if s.limiter != nil {
		createMiddleware = append(createMiddleware, s.limiter.Middleware())
	}
	postrouter.Register(r, createMiddleware...)
	public.Register(r)
	setupSwaggerAndDocs(r)
	if s.monitoring != nil && s.monitoring.IsInitialized() {
		r.GET(s.monitoring.Config().Path, gin.WrapH(s.monitoring.ExporterHandler()))
	}
	r.NoRoute(notFoundHandler)
}
