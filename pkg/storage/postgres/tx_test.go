package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
	"marketplace/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func sellerProductCount(t *testing.T, s storage.ProductStorage, sellerID domain.SellerID) int {
	t.Helper()
	page, err := s.SellerProducts(context.Background(), sellerID, "", time.Time{}, 100)
	require.NoError(t, err)

	return len(page.Products)
}

func TestPgSQL_Transactions(t *testing.T) {
	t.Parallel()

	pg := setupTestDB(t)
	ctx := context.Background()

	t.Run("begin twice", func(t *testing.T) {
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = txStorage.Rollback() }()

		inner, ok := txStorage.(*postgres.PgSQL)
		require.True(t, ok)
		_, isTx := inner.DB.(*sql.Tx)
		require.True(t, isTx)

		_, err = inner.Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	t.Run("commit and rollback outside tx", func(t *testing.T) {
		require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
	})

	t.Run("commit persists", func(t *testing.T) {
		sellerID := domain.SellerID(uuid.New())
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)

		_, err = txStorage.StoreProducts(ctx, domain.Product{SellerID: sellerID, Title: "Mug", Category: "Kitchen"})
		require.NoError(t, err)
		require.Equal(t, 0, sellerProductCount(t, pg, sellerID), "not visible before commit")

		require.NoError(t, txStorage.Commit())
		require.Equal(t, 1, sellerProductCount(t, pg, sellerID))
	})

	t.Run("rollback discards", func(t *testing.T) {
		sellerID := domain.SellerID(uuid.New())
		txStorage, err := pg.Begin(ctx)
		require.NoError(t, err)

		_, err = txStorage.StoreProducts(ctx, domain.Product{SellerID: sellerID, Title: "Mug", Category: "Kitchen"})
		require.NoError(t, err)

		require.NoError(t, txStorage.Rollback())
		require.Equal(t, 0, sellerProductCount(t, pg, sellerID))
	})

	t.Run("with tx", func(t *testing.T) {
		sellerID := domain.SellerID(uuid.New())

		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreProducts(ctx, domain.Product{SellerID: sellerID, Title: "Lamp", Category: "Home"})

			return err //nolint: wrapcheck
		})
		require.NoError(t, err)
		require.Equal(t, 1, sellerProductCount(t, pg, sellerID))

		boom := errors.New("boom")
		err = pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, _ = s.StoreProducts(ctx, domain.Product{SellerID: sellerID, Title: "Rug", Category: "Home"})

			return boom
		})
		require.ErrorIs(t, err, boom)
		require.Equal(t, 1, sellerProductCount(t, pg, sellerID))
	})
}
