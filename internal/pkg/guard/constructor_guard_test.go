package guard_test

import (
	"errors"
	"testing"

	"orderops/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	require.NoError(t, g.Validate(errors.New("not constructed")))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard
		want := errors.New("line not constructed")

		err := g.Validate(want)

		require.Error(t, err)
		assert.Equal(t, want, err)
	})

	t.Run("zero value with nil error returns default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default error names the constructor requirement", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

func TestConstructorGuardEnforcesConstructorUsage(t *testing.T) {
	type lineRef struct {
		id    string
		guard guard.ConstructorGuard
	}

	errNotConstructed := errors.New("lineRef must be created via newLineRef")

	newLineRef := func(id string) (lineRef, error) {
		if id == "" {
			return lineRef{}, errors.New("id is required")
		}
		return lineRef{id: id, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed value passes", func(t *testing.T) {
		ref, err := newLineRef("BO-1")

		require.NoError(t, err)
		require.NoError(t, ref.guard.Validate(errNotConstructed))
	})

	t.Run("zero value fails", func(t *testing.T) {
		var ref lineRef

		err := ref.guard.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})
}
