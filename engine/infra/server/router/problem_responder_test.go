package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/core"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/appstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, register func(r *gin.Engine), path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	return w
}

func TestRespondProblem(t *testing.T) {
	t.Run("Should write a problem body with code and extras", func(t *testing.T) {
		w := serve(t, func(r *gin.Engine) {
			r.GET("/p", func(c *gin.Context) {
				RespondProblem(c, &core.Problem{
					Status: http.StatusUnprocessableEntity,
					Detail: "author: too long",
					Extras: map[string]any{"code": ErrValidationCode, "field": "author"},
				})
			})
		}, "/p")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, ProblemContentType, w.Header().Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(422), body["status"])
		assert.Equal(t, "Unprocessable Entity", body["error"])
		assert.Equal(t, "author: too long", body["details"])
		assert.Equal(t, ErrValidationCode, body["code"])
		assert.Equal(t, "author", body["field"])
	})

	t.Run("Should abort the handler chain", func(t *testing.T) {
		reached := false
		w := serve(t, func(r *gin.Engine) {
			r.GET("/p",
				func(c *gin.Context) { RespondProblemWithCode(c, http.StatusNotFound, ErrNotFoundCode, "gone") },
				func(_ *gin.Context) { reached = true },
			)
		}, "/p")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, reached)
	})
}

func TestGetAppState(t *testing.T) {
	t.Run("Should respond 500 without state", func(t *testing.T) {
		w := serve(t, func(r *gin.Engine) {
			r.GET("/s", func(c *gin.Context) {
				if GetAppState(c) == nil {
					return
				}
				c.Status(http.StatusOK)
			})
		}, "/s")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Should return the attached state", func(t *testing.T) {
		state := &appstate.State{}
		var got *appstate.State
		serve(t, func(r *gin.Engine) {
			r.Use(appstate.StateMiddleware(state))
			r.GET("/s", func(c *gin.Context) { got = GetAppState(c) })
		}, "/s")
		assert.Same(t, state, got)
	})
}
