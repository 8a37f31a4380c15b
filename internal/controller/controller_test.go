package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/storage"
	"task-manager/internal/store"
	"task-manager/internal/validation"
)

func newTestController() (*TaskController, *mockStore, *mockSurface) {
	st := newMockStore()
	surface := newMockSurface()
	c := New(st, domain.DisplayDateTimeFormat)
	c.Bind(surface)
	return c, st, surface
}

func TestSubmitNewTask_Success(t *testing.T) {
	c, _, surface := newTestController()

	c.SubmitNewTask(context.Background(), "T1", "Write report", "2025-07-15T14:30")

	assert.Equal(t, 1, surface.clearedForm)
	require.Len(t, surface.renderedLists, 1)
	require.Len(t, surface.renderedLists[0], 1)
	assert.Equal(t, "T1", surface.renderedLists[0][0].ID)
	assert.Equal(t, "15/07/2025 14:30", surface.renderedLists[0][0].When)

	notification := surface.lastNotification()
	assert.Equal(t, NotifySuccess, notification.level)
	assert.Contains(t, notification.message, `"T1"`)
}

func TestSubmitNewTask_FailureKeepsForm(t *testing.T) {
	c, st, surface := newTestController()
	st.addErr = apperrors.NewDuplicateKeyError("T1")

	c.SubmitNewTask(context.Background(), "T1", "Other", "2025-07-16T09:00")

	// The form keeps its values and no list re-render happens.
	assert.Zero(t, surface.clearedForm)
	assert.Empty(t, surface.renderedLists)

	notification := surface.lastNotification()
	assert.Equal(t, NotifyError, notification.level)
	assert.Equal(t, apperrors.GetUserMessage(st.addErr), notification.message)
}

func TestSearch_EmptyTermShowsPrompt(t *testing.T) {
	c, st, surface := newTestController()

	c.Search("   ")

	require.Len(t, surface.searchMessages, 1)
	assert.Equal(t, searchPrompt, surface.searchMessages[0])
	// No lookup is performed for an empty term.
	assert.Zero(t, st.getCalls)
	assert.Empty(t, st.lastGetKey)
	assert.Empty(t, c.SearchTerm())
}

func TestSearch_TrimsTermBeforeLookup(t *testing.T) {
	c, st, surface := newTestController()
	_, err := st.Add(context.Background(), "T1", "Write report", "2025-07-15T14:30")
	require.NoError(t, err)

	c.Search("  T1  ")

	assert.Equal(t, "T1", st.lastGetKey)
	require.Len(t, surface.searchResults, 1)
	assert.Equal(t, "T1", surface.searchResults[0].ID)
	assert.Equal(t, "Write report", surface.searchResults[0].Description)
	assert.Equal(t, "T1", c.SearchTerm())
}

func TestSearch_MissEchoesSearchedID(t *testing.T) {
	c, _, surface := newTestController()

	c.Search("ghost")

	require.Len(t, surface.searchMessages, 1)
	assert.Contains(t, surface.searchMessages[0], `"ghost"`)
	assert.Equal(t, "ghost", c.SearchTerm())
}

func TestRequestDelete_UnconfirmedIsNoOp(t *testing.T) {
	c, st, surface := newTestController()
	_, err := st.Add(context.Background(), "T1", "Write report", "2025-07-15T14:30")
	require.NoError(t, err)
	surface.confirmAnswer = false

	c.RequestDelete(context.Background(), "T1")

	assert.Equal(t, []string{"T1"}, surface.confirmedIDs)
	// No mutation, no re-render, no notification.
	assert.Zero(t, st.removeCalls)
	assert.Empty(t, surface.renderedLists)
	assert.Empty(t, surface.notifications)
	assert.True(t, st.tasks["T1"].IsValid())
}

func TestRequestDelete_ConfirmedRemovesAndRenders(t *testing.T) {
	c, st, surface := newTestController()
	ctx := context.Background()
	_, err := st.Add(ctx, "T1", "Write report", "2025-07-15T14:30")
	require.NoError(t, err)

	c.RequestDelete(ctx, "T1")

	assert.Equal(t, 1, st.removeCalls)
	require.Len(t, surface.renderedLists, 1)
	assert.Empty(t, surface.renderedLists[0])

	notification := surface.lastNotification()
	assert.Equal(t, NotifySuccess, notification.level)
	assert.Contains(t, notification.message, `"T1"`)
}

func TestRequestDelete_ClearsMatchingSearch(t *testing.T) {
	c, st, surface := newTestController()
	ctx := context.Background()
	_, err := st.Add(ctx, "T1", "Write report", "2025-07-15T14:30")
	require.NoError(t, err)

	c.Search("T1")
	c.RequestDelete(ctx, "T1")

	assert.Equal(t, 1, surface.clearedSearch)
	assert.Empty(t, c.SearchTerm())
}

func TestRequestDelete_KeepsUnrelatedSearch(t *testing.T) {
	c, st, surface := newTestController()
	ctx := context.Background()
	_, err := st.Add(ctx, "T1", "Write report", "2025-07-15T14:30")
	require.NoError(t, err)
	_, err = st.Add(ctx, "T2", "Review report", "2025-07-16T10:00")
	require.NoError(t, err)

	c.Search("T2")
	c.RequestDelete(ctx, "T1")

	assert.Zero(t, surface.clearedSearch)
	assert.Equal(t, "T2", c.SearchTerm())
}

func TestRequestDelete_MissNotifiesError(t *testing.T) {
	c, st, surface := newTestController()

	c.RequestDelete(context.Background(), "ghost")

	assert.Equal(t, 1, st.removeCalls)
	assert.Empty(t, surface.renderedLists)

	notification := surface.lastNotification()
	assert.Equal(t, NotifyError, notification.level)
	assert.Contains(t, notification.message, `"ghost"`)
}

func TestRefresh_RendersWithoutMutation(t *testing.T) {
	c, st, surface := newTestController()
	_, err := st.Add(context.Background(), "T1", "Write report", "2025-07-15T14:30")
	require.NoError(t, err)

	c.Refresh()
	c.Refresh()

	assert.Len(t, surface.renderedLists, 2)
	assert.Zero(t, st.removeCalls)
	assert.Zero(t, st.clearCalls)
	assert.Empty(t, surface.notifications)
}

func TestClearAll(t *testing.T) {
	c, st, surface := newTestController()
	ctx := context.Background()
	_, err := st.Add(ctx, "T1", "Write report", "2025-07-15T14:30")
	require.NoError(t, err)

	c.ClearAll(ctx)

	assert.Equal(t, 1, st.clearCalls)
	require.Len(t, surface.renderedLists, 1)
	assert.Empty(t, surface.renderedLists[0])
	assert.Equal(t, NotifySuccess, surface.lastNotification().level)
}

// TestController_WithRealStore drives the controller against the real task
// store to cover the whole event path: submit, duplicate, search, delete.
func TestController_WithRealStore(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()
	st, err := store.New(ctx, backend, validation.NewTaskValidator(), logging.Nop())
	require.NoError(t, err)

	surface := newMockSurface()
	c := New(st, domain.DisplayDateTimeFormat)
	c.Bind(surface)

	c.SubmitNewTask(ctx, "T1", "Write report", "2025-07-15T14:30")
	assert.Equal(t, NotifySuccess, surface.lastNotification().level)

	c.SubmitNewTask(ctx, "T1", "Other", "2025-07-16T09:00")
	assert.Equal(t, NotifyError, surface.lastNotification().level)
	assert.Contains(t, surface.lastNotification().message, `"T1"`)

	c.Search("T1")
	require.Len(t, surface.searchResults, 1)
	assert.Equal(t, "Write report", surface.searchResults[0].Description)

	c.RequestDelete(ctx, "T1")
	assert.Equal(t, NotifySuccess, surface.lastNotification().level)
	assert.Equal(t, 1, surface.clearedSearch)
	assert.Zero(t, st.Count())
}
