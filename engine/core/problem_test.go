package core

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProblem(t *testing.T) {
	t.Run("Should fill defaults for a nil problem", func(t *testing.T) {
		p := NormalizeProblem(nil)
		assert.Equal(t, http.StatusInternalServerError, p.Status)
		assert.Equal(t, "Internal Server Error", p.Title)
		assert.Equal(t, "about:blank", p.Type)
	})

	t.Run("Should derive the title from the status", func(t *testing.T) {
		p := NormalizeProblem(&Problem{Status: http.StatusNotFound})
		assert.Equal(t, "Not Found", p.Title)
	})
}

func TestBuildProblemBody(t *testing.T) {
	t.Run("Should include code and extras without overriding reserved keys", func(t *testing.T) {
		p := NormalizeProblem(&Problem{
			Status: http.StatusUnprocessableEntity,
			Detail: "content: too long",
			Extras: map[string]any{"code": "validation_failed", "field": "content", "status": 999},
		})
		body := BuildProblemBody(p)
		assert.Equal(t, http.StatusUnprocessableEntity, body["status"])
		assert.Equal(t, "Unprocessable Entity", body["error"])
		assert.Equal(t, "content: too long", body["details"])
		assert.Equal(t, "validation_failed", body["code"])
		assert.Equal(t, "content", body["field"])
		assert.Equal(t, "about:blank", body["type"])
	})

	t.Run("Should omit empty details and code", func(t *testing.T) {
		body := BuildProblemBody(NormalizeProblem(&Problem{Status: http.StatusBadRequest}))
		assert.NotContains(t, body, "details")
		assert.NotContains(t, body, "code")
	})
}
