package postrouter

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/core"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/router"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/routes"
	"github.com/reikouwu/House-Liber-Arce/engine/post/uc"
)

const sectionNotFoundDetail = "Section not found"

// listPosts handles GET /sections/{section_id}/posts.
//
// @Summary List posts in a section
// @Description Returns every post of the section, oldest first. Unknown sections yield 404.
// @Tags posts
// @Produce json
// @Param section_id path string true "Section ID" example("npcs")
// @Success 200 {array} post.Post "Posts retrieved"
// @Failure 404 {object} core.ProblemDocument "Section not found"
// @Failure 500 {object} core.ProblemDocument "Internal server error"
// @Router /sections/{section_id}/posts [get]
func listPosts(c *gin.Context) {
	appState := router.GetAppState(c)
	if appState == nil {
		return
	}
	sectionID := router.GetURLParam(c, routes.SectionIDParam)
	posts, err := appState.PostUseCases().ListPosts(sectionID).Execute(c.Request.Context())
	if err != nil {
		respondPostError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// createPost handles POST /sections/{section_id}/posts.
//
// @Summary Append a post to a section
// @Description Validates the draft, assigns id and timestamp, and stores it in the section.
// @Tags posts
// @Accept json
// @Produce json
// @Param section_id path string true "Section ID" example("npcs")
// @Param payload body uc.AppendPostInput true "Post draft"
// @Success 201 {object} post.Post "Post created"
// @Failure 400 {object} core.ProblemDocument "Invalid JSON body"
// @Failure 404 {object} core.ProblemDocument "Section not found"
// @Failure 413 {object} core.ProblemDocument "Request body too large"
// @Failure 422 {object} core.ProblemDocument "Validation failed"
// @Failure 429 {object} core.ProblemDocument "Rate limited"
// @Failure 500 {object} core.ProblemDocument "Internal server error"
// @Router /sections/{section_id}/posts [post]
func createPost(c *gin.Context) {
	appState := router.GetAppState(c)
	if appState == nil {
		return
	}
	sectionID := router.GetURLParam(c, routes.SectionIDParam)
	input := &uc.AppendPostInput{}
	if err := c.ShouldBindJSON(input); err != nil {
		respondBindError(c, err)
		return
	}
	created, err := appState.PostUseCases().AppendPost(sectionID, input).Execute(c.Request.Context())
	if err != nil {
		respondPostError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func respondBindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		router.RespondProblemWithCode(
			c,
			http.StatusRequestEntityTooLarge,
			router.ErrPayloadTooLargeCode,
			"request body too large",
		)
		return
	}
	router.RespondProblemWithCode(c, http.StatusBadRequest, router.ErrInvalidRequestCode, "invalid JSON body")
}

func respondPostError(c *gin.Context, err error) {
	var vErr *uc.ValidationError
	switch {
	case errors.Is(err, uc.ErrSectionNotFound):
		router.RespondProblemWithCode(c, http.StatusNotFound, router.ErrSectionNotFoundCode, sectionNotFoundDetail)
	case errors.As(err, &vErr):
		router.RespondProblem(c, &core.Problem{
			Status: http.StatusUnprocessableEntity,
			Detail: vErr.Error(),
			Extras: map[string]any{"code": router.ErrValidationCode, "field": vErr.Field},
		})
	default:
		router.RespondInternalError(c, err)
	}
}
