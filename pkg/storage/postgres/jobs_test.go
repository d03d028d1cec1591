package postgres_test

import (
	"context"
	"database/sql"
	"marketplace/internal/catalog"
	"marketplace/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

type testJobArgs struct {
	Key string `json:"key" river:"unique"`
}

func (testJobArgs) Kind() string { return "test_job" }

func TestPgSQL_AddJob(t *testing.T) {
	t.Parallel()

	pg := setupTestDB(t)
	ctx := context.Background()

	t.Run("inside transaction", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = txStorage.Rollback() }()

		added, err := txStorage.AddJob(ctx, testJobArgs{Key: "tx"}, nil)
		require.NoError(t, err)
		require.True(t, added)

		rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
			ctx,
			t,
			txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
			&testJobArgs{},
			nil,
		)
	})

	t.Run("outside transaction", func(t *testing.T) {
		added, err := pg.AddJob(ctx, testJobArgs{Key: "db"}, nil)
		require.NoError(t, err)
		require.True(t, added)

		rivertest.RequireInserted[*riverdatabasesql.Driver](
			ctx,
			t,
			riverdatabasesql.New(pg.DB.(*sql.DB)),
			&testJobArgs{},
			nil,
		)
	})

	t.Run("unique duplicate is skipped", func(t *testing.T) {
		opts := &river.InsertOpts{UniqueOpts: river.UniqueOpts{ByArgs: true, ByPeriod: time.Hour}}

		added, err := pg.AddJob(ctx, testJobArgs{Key: "dup"}, opts)
		require.NoError(t, err)
		require.True(t, added)

		added, err = pg.AddJob(ctx, testJobArgs{Key: "dup"}, opts)
		require.NoError(t, err)
		require.False(t, added)
	})
}

func TestPgSQL_AddJob_CompletedRecategorizeDoesNotBlockRestart(t *testing.T) {
	t.Parallel()

	pg := setupTestDB(t)
	ctx := context.Background()
	args := catalog.RecategorizeJobArgs{TaxonomyVersion: "v1"}

	added, err := pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, added)

	added, err = pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.False(t, added, "an available first page must block a second pass")

	_, err = pg.DB.ExecContext(ctx,
		`UPDATE river_job SET state = 'completed', finalized_at = now() WHERE kind = $1`, args.Kind())
	require.NoError(t, err)

	added, err = pg.AddJob(ctx, args, nil)
	require.NoError(t, err)
	require.True(t, added, "a completed first page must not block a new pass")
}
