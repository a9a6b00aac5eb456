package trace

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/touchlab-io/gesturekit/gesture"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "traces.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrationsWithDB(db, migrations))
	return db
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	r := Recording{
		ID:      uuid.NewString(),
		Name:    "two finger flick",
		Gesture: gesture.TwoFingerSwipeDown,
		Samples: []gesture.Sample{
			{Action: gesture.ActionDown, Pointers: []gesture.Point{{X: 10, Y: 20}}},
			{Action: gesture.ActionPointerDown, Pointers: []gesture.Point{{X: 10, Y: 20}, {X: 90, Y: 20}}, Time: 5 * time.Millisecond},
			{Action: gesture.ActionMove, Pointers: []gesture.Point{{X: 10, Y: 140}, {X: 90, Y: 140}}, Time: 25 * time.Millisecond, DisplayID: 1},
			{Action: gesture.ActionUp, Pointers: []gesture.Point{{X: 10, Y: 140}}, Time: 45 * time.Millisecond},
		},
	}
	require.NoError(t, store.Insert(ctx, r))

	got, err := store.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, r.Name, got.Name)
	require.Equal(t, r.Gesture, got.Gesture)
	require.Equal(t, r.Samples, got.Samples)
	require.False(t, got.CreatedAt.IsZero())
}

func TestStoreListAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTestDB(t)
	store := NewStore(db)

	a := Recording{ID: uuid.NewString(), Name: "a", Samples: []gesture.Sample{
		{Action: gesture.ActionDown, Pointers: []gesture.Point{{X: 1, Y: 1}}},
	}}
	b := Recording{ID: uuid.NewString(), Name: "b", Gesture: gesture.DoubleTap}
	require.NoError(t, store.Insert(ctx, a))
	require.NoError(t, store.Insert(ctx, b))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// headers only
	for _, r := range list {
		require.Empty(t, r.Samples)
	}

	require.NoError(t, store.Delete(ctx, a.ID))
	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, b.ID, list[0].ID)

	// samples went with the cascade
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM samples WHERE recording_id = ?`, a.ID).Scan(&n))
	require.Zero(t, n)
}

func TestStoreUnlabelledGesture(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewStore(openTestDB(t))

	r := Recording{ID: uuid.NewString(), Name: "raw capture"}
	require.NoError(t, store.Insert(ctx, r))
	got, err := store.Get(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, gesture.Unknown, got.Gesture)
}
