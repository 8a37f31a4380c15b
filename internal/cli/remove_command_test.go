package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed removal deletes the task", func(t *testing.T) {
		app, out, _ := setupTestApp(t, "y\n")
		addTask(t, app, "T1", "Write report", "2025-07-20T09:00")
		cmd := NewRemoveCommand(app)

		err := cmd.Execute(ctx, []string{"T1"})
		require.NoError(t, err)

		assert.False(t, app.Store.Has("T1"))
		assert.Contains(t, out.String(), `OK: Task "T1" deleted.`)
	})

	t.Run("declined prompt keeps the task", func(t *testing.T) {
		app, out, _ := setupTestApp(t, "n\n")
		addTask(t, app, "T1", "Write report", "2025-07-20T09:00")
		cmd := NewRemoveCommand(app)

		err := cmd.Execute(ctx, []string{"T1"})
		require.NoError(t, err)

		assert.True(t, app.Store.Has("T1"))
		assert.Contains(t, out.String(), "Delete cancelled.")
	})

	t.Run("assume yes skips the prompt", func(t *testing.T) {
		app, out, _ := setupTestApp(t, "")
		addTask(t, app, "T1", "Write report", "2025-07-20T09:00")
		app.Surface.AssumeYes = true
		cmd := NewRemoveCommand(app)

		err := cmd.Execute(ctx, []string{"T1"})
		require.NoError(t, err)

		assert.False(t, app.Store.Has("T1"))
		assert.NotContains(t, out.String(), "[y/N]")
	})

	t.Run("missing task fails with nonzero exit", func(t *testing.T) {
		app, _, errOut := setupTestApp(t, "")
		app.Surface.AssumeYes = true
		cmd := NewRemoveCommand(app)

		err := cmd.Execute(ctx, []string{"T9"})
		assert.ErrorIs(t, err, ErrCommandFailed)
		assert.Contains(t, errOut.String(), "ERROR:")
	})

	t.Run("rejects wrong argument count", func(t *testing.T) {
		app, _, _ := setupTestApp(t, "")
		cmd := NewRemoveCommand(app)

		err := cmd.Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: tm remove")
	})
}
