package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRaces(t *testing.T) {
	t.Run("Should serve the races document", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		Register(r)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/public/races", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		var doc Document
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "Mortisian Kingdom — Races", doc.Title)
		assert.Contains(t, doc.Content, "**public**")
	})
}
