package appstate

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/reikouwu/House-Liber-Arce/engine/post/uc"
	"github.com/reikouwu/House-Liber-Arce/engine/section"
	"github.com/reikouwu/House-Liber-Arce/pkg/config"
)

type contextKey string

const (
	stateKey contextKey = "app_state"
)

// BaseDeps are the long-lived dependencies handlers read from the request.
type BaseDeps struct {
	Config   *config.Config
	Sections *section.Registry
	Posts    post.Repository
}

func NewBaseDeps(cfg *config.Config, sections *section.Registry, posts post.Repository) BaseDeps {
	return BaseDeps{Config: cfg, Sections: sections, Posts: posts}
}

type State struct {
	BaseDeps
}

func NewState(deps BaseDeps) (*State, error) {
	if deps.Sections == nil {
		return nil, fmt.Errorf("section registry is required")
	}
	if deps.Posts == nil {
		return nil, fmt.Errorf("post repository is required")
	}
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	return &State{BaseDeps: deps}, nil
}

// PostUseCases builds the post use case factory over the state's dependencies.
func (s *State) PostUseCases() *uc.Factory {
	return uc.NewFactory(s.Posts, s.Sections)
}

func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, stateKey, state)
}

func GetState(ctx context.Context) (*State, error) {
	state, ok := ctx.Value(stateKey).(*State)
	if !ok {
		return nil, fmt.Errorf("app state not found in context")
	}
	return state, nil
}

func StateMiddleware(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithState(c.Request.Context(), state)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
