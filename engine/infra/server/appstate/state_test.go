package appstate

import (
	"context"
	"testing"

	"github.com/reikouwu/House-Liber-Arce/engine/infra/memory"
	"github.com/reikouwu/House-Liber-Arce/engine/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Run("Should require sections and posts", func(t *testing.T) {
		_, err := NewState(BaseDeps{Posts: memory.NewPostRepo()})
		assert.Error(t, err)
		_, err = NewState(BaseDeps{Sections: section.DefaultRegistry()})
		assert.Error(t, err)
	})

	t.Run("Should default the config", func(t *testing.T) {
		state, err := NewState(NewBaseDeps(nil, section.DefaultRegistry(), memory.NewPostRepo()))
		require.NoError(t, err)
		assert.NotNil(t, state.Config)
		assert.NotNil(t, state.PostUseCases())
	})
}

func TestGetState(t *testing.T) {
	t.Run("Should round-trip through the context", func(t *testing.T) {
		state := &State{}
		got, err := GetState(WithState(context.Background(), state))
		require.NoError(t, err)
		assert.Same(t, state, got)
	})

	t.Run("Should fail when absent", func(t *testing.T) {
		_, err := GetState(context.Background())
		assert.Error(t, err)
	})
}
