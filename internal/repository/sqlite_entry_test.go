package repository

import (
	"context"
	"testing"
	"time"

	"github.com/st325a1114/bokunokada/internal/domain"
	"github.com/st325a1114/bokunokada/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryRepoSetup(t *testing.T) *SQLiteEntryRepo {
	t.Helper()
	return NewSQLiteEntryRepo(testutil.NewTestDB(t))
}

func TestEntryRepo_AppendAssignsSeq(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	first := testutil.NewTestEntry(t, "work", "09:00", "17:00")
	second := testutil.NewTestEntry(t, "lunch", "12:00", "13:00")
	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
}

func TestEntryRepo_ListAllInsertionOrder(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	// Names deliberately out of alphabetical order.
	for _, name := range []string{"zzz", "aaa", "mmm"} {
		require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(t, name, "09:00", "10:00")))
	}

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "zzz", list[0].Name)
	assert.Equal(t, "aaa", list[1].Name)
	assert.Equal(t, "mmm", list[2].Name)
}

func TestEntryRepo_ListAllRoundTripsFields(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	in := testutil.NewTestEntry(t, "sleep", "23:00", "01:00")
	require.NoError(t, repo.Append(ctx, in))

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	out := list[0]
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, "sleep", out.Name)
	assert.Equal(t, testutil.MustClock(t, "23:00"), out.Start)
	assert.Equal(t, testutil.MustClock(t, "01:00"), out.End)
	assert.Equal(t, 120, out.DurationMin)
	assert.WithinDuration(t, in.CreatedAt, out.CreatedAt, time.Second, "timestamps survive at second precision")
}

func TestEntryRepo_ListAllEmpty(t *testing.T) {
	repo := entryRepoSetup(t)

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEntryRepo_TotalsByNameGroups(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(t, "work", "09:00", "10:00")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(t, "work", "14:00", "15:00")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(t, "gym", "18:00", "19:00")))

	totals, err := repo.TotalsByName(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2, "same-name entries collapse into one bucket")
	assert.Equal(t, domain.Bucket{Label: "gym", Minutes: 60}, totals[0], "ordered by name")
	assert.Equal(t, domain.Bucket{Label: "work", Minutes: 120}, totals[1])
}

func TestEntryRepo_TotalsByNameEmpty(t *testing.T) {
	repo := entryRepoSetup(t)

	totals, err := repo.TotalsByName(context.Background())
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestEntryRepo_DeleteAll(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(t, "work", "09:00", "17:00")))
	require.NoError(t, repo.DeleteAll(ctx))

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Clearing again must succeed on an already-empty ledger.
	require.NoError(t, repo.DeleteAll(ctx))
}

func TestEntryRepo_SeqRestartsAfterDeleteAll(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEntry(t, "work", "09:00", "17:00")))
	require.NoError(t, repo.DeleteAll(ctx))

	fresh := testutil.NewTestEntry(t, "gym", "18:00", "19:00")
	require.NoError(t, repo.Append(ctx, fresh))
	assert.Equal(t, 1, fresh.Seq, "a cleared ledger counts from scratch")
}

func TestEntryRepo_RejectsDuplicateID(t *testing.T) {
	repo := entryRepoSetup(t)
	ctx := context.Background()

	e := testutil.NewTestEntry(t, "work", "09:00", "10:00", testutil.WithEntryID("fixed"))
	require.NoError(t, repo.Append(ctx, e))

	dup := testutil.NewTestEntry(t, "other", "10:00", "11:00", testutil.WithEntryID("fixed"))
	err := repo.Append(ctx, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting entry")
}
