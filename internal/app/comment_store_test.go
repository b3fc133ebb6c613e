package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackboard/trackboard/internal/domain"
	"github.com/trackboard/trackboard/internal/domain/comment"
)

func TestCommentStore_OpenDetailLoadsThread(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		listCommentsFn: func(_ context.Context, ticketID string) ([]comment.Comment, error) {
			assert.Equal(t, "t1", ticketID)
			return []comment.Comment{{ID: "c1", Author: "Ada", Body: "On it"}}, nil
		},
	}
	store := NewCommentStore(client, NewSyncer(discardLogger()), nil, discardLogger())

	require.NoError(t, store.OpenDetail(context.Background(), "t1"))
	assert.Equal(t, "t1", store.TicketID())
	assert.Len(t, store.Snapshot(), 1)
}

func TestCommentStore_AddRefetchesThread(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	store := NewCommentStore(client, NewSyncer(discardLogger()), nil, discardLogger())
	require.NoError(t, store.OpenDetail(context.Background(), "t1"))

	listCallsBefore := client.listCommentsCalls
	require.NoError(t, store.Add(context.Background(), "Ada", "On it"))

	assert.Equal(t, 1, client.addCommentCalls)
	assert.Equal(t, listCallsBefore+1, client.listCommentsCalls, "add must refetch the thread")
}

func TestCommentStore_AddInvalidCommentSendsNothing(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	store := NewCommentStore(client, NewSyncer(discardLogger()), nil, discardLogger())
	require.NoError(t, store.OpenDetail(context.Background(), "t1"))

	err := store.Add(context.Background(), "A", "On it")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, client.addCommentCalls)
}

func TestCommentStore_AddTargetsOpenTicket(t *testing.T) {
	t.Parallel()

	var posted *comment.Comment
	client := &fakeClient{
		addCommentFn: func(_ context.Context, c *comment.Comment) (*comment.Comment, error) {
			posted = c
			out := *c
			return &out, nil
		},
	}
	store := NewCommentStore(client, NewSyncer(discardLogger()), nil, discardLogger())
	require.NoError(t, store.OpenDetail(context.Background(), "t1"))

	require.NoError(t, store.Add(context.Background(), "Ada", "On it"))
	require.NotNil(t, posted)
	assert.Equal(t, "t1", posted.TicketID)
}

func TestCommentStore_CloseDetailRunsHookAndClears(t *testing.T) {
	t.Parallel()

	hookRuns := 0
	client := &fakeClient{
		listCommentsFn: func(context.Context, string) ([]comment.Comment, error) {
			return []comment.Comment{{ID: "c1"}}, nil
		},
	}
	store := NewCommentStore(client, NewSyncer(discardLogger()),
		func(context.Context) error {
			hookRuns++
			return nil
		}, discardLogger())
	require.NoError(t, store.OpenDetail(context.Background(), "t1"))

	require.NoError(t, store.CloseDetail(context.Background()))
	assert.Equal(t, 1, hookRuns, "closing the detail view must run the close hook")
	assert.Empty(t, store.TicketID())
	assert.Empty(t, store.Snapshot())
}

func TestCommentStore_CloseDetailNilHook(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	store := NewCommentStore(client, NewSyncer(discardLogger()), nil, discardLogger())
	require.NoError(t, store.OpenDetail(context.Background(), "t1"))

	require.NoError(t, store.CloseDetail(context.Background()))
}
