package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamcalendar/internal/domain"
)

var (
	t1000 = time.Unix(1000, 0).UTC()
	t2000 = time.Unix(2000, 0).UTC()
	t3000 = time.Unix(3000, 0).UTC()
)

func ptr[T any](v T) *T { return &v }

func TestEventService_ListEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the window through", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.listResult = []*domain.Event{{ID: 1, Title: "Shift", Start: t1000, End: t2000, Employees: []domain.Employee{}}}
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		q := domain.EventsQuery{Start: &t1000, End: &t3000}
		events, err := svc.ListEvents(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, repo.listResult, events)
		assert.Equal(t, q, repo.lastQuery)
	})

	t.Run("unbounded query", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		events, err := svc.ListEvents(ctx, domain.EventsQuery{})
		require.NoError(t, err)
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})

	t.Run("inverted window is rejected before the store", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		_, err := svc.ListEvents(ctx, domain.EventsQuery{Start: &t3000, End: &t1000})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, repo.calls)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.listErr = domain.ErrDataConversion
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		events, err := svc.ListEvents(ctx, domain.EventsQuery{})
		require.ErrorIs(t, err, domain.ErrDataConversion)
		assert.Nil(t, events)
	})
}

func TestEventService_CreateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("creates event and participants in one transaction", func(t *testing.T) {
		repo := newFakeEventRepo()
		tx := &fakeTxManager{}
		svc := NewEventService(repo, tx, testTimeout)

		in := domain.NewEventInput("Shift", "", t1000, t2000, ptr(int64(3)), []int64{2, 1, 2})
		id, err := svc.CreateEvent(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		assert.Equal(t, []string{"create", "add"}, repo.calls)
		assert.Equal(t, []int64{2, 1}, repo.employees[id])
		assert.Equal(t, 1, tx.committed)
	})

	t.Run("zero length event is allowed", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		_, err := svc.CreateEvent(ctx, domain.NewEventInput("Point", "", t1000, t1000, nil, nil))
		require.NoError(t, err)
	})

	t.Run("empty title is stored as is", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		id, err := svc.CreateEvent(ctx, domain.NewEventInput("", "", t1000, t2000, nil, nil))
		require.NoError(t, err)
		assert.Equal(t, "", repo.events[id].Title)
	})

	t.Run("association failure rolls back", func(t *testing.T) {
		repo := newFakeEventRepo()
		repo.addErr = domain.ErrInvalidReference
		tx := &fakeTxManager{}
		svc := NewEventService(repo, tx, testTimeout)

		id, err := svc.CreateEvent(ctx, domain.NewEventInput("Shift", "", t1000, t2000, nil, []int64{999}))
		require.ErrorIs(t, err, domain.ErrInvalidReference)
		assert.Zero(t, id)
		assert.Equal(t, 1, tx.rolledBack)
		assert.Zero(t, tx.committed)
	})

	invalid := []struct {
		name  string
		input *domain.EventInput
	}{
		{name: "start after end", input: domain.NewEventInput("Shift", "", t2000, t1000, nil, nil)},
		{name: "missing end", input: domain.NewEventInput("Shift", "", t1000, time.Time{}, nil, nil)},
		{name: "non positive team", input: domain.NewEventInput("Shift", "", t1000, t2000, ptr(int64(0)), nil)},
		{name: "non positive employee", input: domain.NewEventInput("Shift", "", t1000, t2000, nil, []int64{1, -1})},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEventRepo()
			tx := &fakeTxManager{}
			svc := NewEventService(repo, tx, testTimeout)

			_, err := svc.CreateEvent(ctx, tt.input)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, tx.calls)
			assert.Empty(t, repo.calls)
		})
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the participant set", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		id, err := svc.CreateEvent(ctx, domain.NewEventInput("Shift", "", t1000, t2000, nil, []int64{1, 2}))
		require.NoError(t, err)
		repo.calls = nil

		in := domain.NewEventInput("Shift", "moved", t2000, t3000, nil, []int64{2, 3})
		in.ID = id
		require.NoError(t, svc.UpdateEvent(ctx, in))

		assert.Equal(t, []string{"update", "clear", "add"}, repo.calls)
		assert.Equal(t, []int64{2, 3}, repo.employees[id])
		assert.Equal(t, "moved", repo.events[id].Details)
	})

	t.Run("empty list clears participants", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

		id, err := svc.CreateEvent(ctx, domain.NewEventInput("Shift", "", t1000, t2000, nil, []int64{1, 2}))
		require.NoError(t, err)

		in := domain.NewEventInput("Shift", "", t1000, t2000, nil, nil)
		in.ID = id
		require.NoError(t, svc.UpdateEvent(ctx, in))
		assert.Empty(t, repo.employees[id])
	})

	t.Run("unknown id stops before touching participants", func(t *testing.T) {
		repo := newFakeEventRepo()
		tx := &fakeTxManager{}
		svc := NewEventService(repo, tx, testTimeout)

		in := domain.NewEventInput("Shift", "", t1000, t2000, nil, []int64{1})
		in.ID = 42
		err := svc.UpdateEvent(ctx, in)
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, []string{"update"}, repo.calls)
		assert.Equal(t, 1, tx.rolledBack)
	})

	t.Run("clear failure rolls back", func(t *testing.T) {
		repo := newFakeEventRepo()
		tx := &fakeTxManager{}
		svc := NewEventService(repo, tx, testTimeout)
		id, err := svc.CreateEvent(ctx, domain.NewEventInput("Shift", "", t1000, t2000, nil, nil))
		require.NoError(t, err)
		repo.clearErr = domain.ErrConnection

		in := domain.NewEventInput("Shift", "", t1000, t2000, nil, nil)
		in.ID = id
		require.ErrorIs(t, svc.UpdateEvent(ctx, in), domain.ErrConnection)
		assert.Equal(t, 1, tx.rolledBack)
	})

	t.Run("transaction failure", func(t *testing.T) {
		repo := newFakeEventRepo()
		tx := &fakeTxManager{beginErr: domain.ErrTransaction}
		svc := NewEventService(repo, tx, testTimeout)

		in := domain.NewEventInput("Shift", "", t1000, t2000, nil, nil)
		in.ID = 1
		require.ErrorIs(t, svc.UpdateEvent(ctx, in), domain.ErrTransaction)
		assert.Empty(t, repo.calls)
	})

	t.Run("missing id", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), &fakeTxManager{}, testTimeout)
		err := svc.UpdateEvent(ctx, domain.NewEventInput("Shift", "", t1000, t2000, nil, nil))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo, &fakeTxManager{}, testTimeout)

	id, err := svc.CreateEvent(ctx, domain.NewEventInput("Shift", "", t1000, t2000, nil, []int64{1}))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, id))
	assert.Empty(t, repo.events)
	assert.Empty(t, repo.employees)

	require.ErrorIs(t, svc.DeleteEvent(ctx, id), domain.ErrNotFound)
	require.ErrorIs(t, svc.DeleteEvent(ctx, 0), domain.ErrInvalidInput)
}
