package router

import (
	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/appstate"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// GetAppState returns the state attached by appstate.StateMiddleware, or
// writes a 500 problem and returns nil.
func GetAppState(c *gin.Context) *appstate.State {
	state, err := appstate.GetState(c.Request.Context())
	if err != nil {
		RespondInternalError(c, ErrAppStateMissing)
		return nil
	}
	return state
}

// GetURLParam returns the path parameter exactly as routed. Section ids are
// matched byte for byte, so no trimming happens here.
func GetURLParam(c *gin.Context, key string) string {
	return c.Param(key)
}
