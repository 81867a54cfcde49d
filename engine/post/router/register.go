package postrouter

import (
	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/routes"
)

// Register mounts the post routes. createMiddleware runs only in front of
// post creation (body limits, rate limiting).
func Register(r gin.IRouter, createMiddleware ...gin.HandlerFunc) {
	// GET /sections/:section_id/posts
	// List a section's posts oldest first
	r.GET(routes.SectionPosts(), listPosts)

	// POST /sections/:section_id/posts
	// Append a post to a section
	handlers := append(append([]gin.HandlerFunc{}, createMiddleware...), createPost)
	r.POST(routes.SectionPosts(), handlers...)
}
