package catalog_test

import (
	"context"
	"errors"
	"marketplace/internal/catalog"
	"marketplace/pkg/domain"
	"marketplace/pkg/serrors"
	"marketplace/pkg/storage"
	mockstorage "marketplace/pkg/storage/mock"
	"marketplace/pkg/taxonomy"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCatalog(t *testing.T, opts catalog.Options) (*mockstorage.MockStorage, catalog.Catalog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	c, err := catalog.New(st, taxonomy.Default(), opts)
	require.NoError(t, err)

	return st, c
}

func TestNew_InvalidFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := catalog.New(mockstorage.NewMockStorage(ctrl), taxonomy.Default(), catalog.Options{FeeBasisPoints: 20_000})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_Create(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{FeeBasisPoints: 1000})
	sellerID := domain.SellerID(uuid.New())

	st.EXPECT().StoreProducts(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, products ...domain.Product) ([]domain.Product, error) {
			require.Len(t, products, 1)
			products[0].ID = domain.ProductID(uuid.New())

			return products, nil
		},
	)

	p, err := c.Create(context.Background(), sellerID, catalog.NewProduct{
		Title:          "  Model 42 ",
		LegacyCategory: "Apparel & Accessories > Shoes > Sneakers ",
		PriceCents:     4999,
	})
	require.NoError(t, err)
	require.Equal(t, sellerID, p.SellerID)
	require.Equal(t, "Model 42", p.Title)
	require.Equal(t, "Shoes", p.Category)
	require.Equal(t, "Apparel & Accessories > Shoes > Sneakers", p.LegacyCategory)
	require.EqualValues(t, 4999, p.PriceCents)
}

func TestCatalog_Create_Invalid(t *testing.T) {
	_, c := newTestCatalog(t, catalog.Options{FeeBasisPoints: 1000})

	for _, in := range []catalog.NewProduct{
		{Title: "   ", PriceCents: 100},
		{Title: strings.Repeat("a", catalog.MaxTitleLength+1), PriceCents: 100},
		{Title: "Lamp", PriceCents: -1},
	} {
		_, err := c.Create(context.Background(), domain.SellerID{}, in)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
}

func TestCatalog_Create_StorageError(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{})
	boom := errors.New("boom")
	st.EXPECT().StoreProducts(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := c.Create(context.Background(), domain.SellerID{}, catalog.NewProduct{Title: "Lamp"})
	require.ErrorIs(t, err, boom)
}

func TestCatalog_SellerProducts(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{})
	sellerID := domain.SellerID(uuid.New())
	cursor := time.Date(2024, 6, 1, 10, 0, 0, 123456000, time.UTC)
	next := cursor.Add(-time.Minute)

	st.EXPECT().SellerProducts(gomock.Any(), sellerID, "Kitchen", cursor, uint(catalog.DefaultLimit)).
		Return(storage.SellerProducts{
			Products:   []domain.Product{{Title: "Mug"}},
			NextCursor: &next,
		}, nil)

	products, nextCursor, err := c.SellerProducts(context.Background(),
		sellerID, "KITCHEN", cursor.Format(time.RFC3339Nano), 0)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, next.Format(time.RFC3339Nano), nextCursor)
}

func TestCatalog_SellerProducts_ClampsLimit(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{})

	st.EXPECT().SellerProducts(gomock.Any(), gomock.Any(), "", time.Time{}, uint(catalog.MaxLimit)).
		Return(storage.SellerProducts{}, nil)

	products, next, err := c.SellerProducts(context.Background(), domain.SellerID{}, "", "", 1000)
	require.NoError(t, err)
	require.Empty(t, products)
	require.Empty(t, next)
}

func TestCatalog_SellerProducts_BadInput(t *testing.T) {
	_, c := newTestCatalog(t, catalog.Options{})

	_, _, err := c.SellerProducts(context.Background(), domain.SellerID{}, "", "yesterday", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, _, err = c.SellerProducts(context.Background(), domain.SellerID{}, "Spaceships", "", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_ProductAndDelete_NotFound(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{})
	sellerID := domain.SellerID(uuid.New())
	id := domain.ProductID(uuid.New())

	st.EXPECT().ProductByID(gomock.Any(), sellerID, id).Return(nil, nil)
	_, err := c.Product(context.Background(), sellerID, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().DeleteProduct(gomock.Any(), sellerID, id).Return(nil, nil)
	require.ErrorIs(t, c.Delete(context.Background(), sellerID, id), serrors.ErrNotFound)

	st.EXPECT().DeleteProduct(gomock.Any(), sellerID, id).Return(&domain.Product{ID: id}, nil)
	require.NoError(t, c.Delete(context.Background(), sellerID, id))
}

func TestCatalog_Payout(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{FeeBasisPoints: 1250})
	sellerID := domain.SellerID(uuid.New())
	id := domain.ProductID(uuid.New())

	st.EXPECT().ProductByID(gomock.Any(), sellerID, id).Return(&domain.Product{ID: id, PriceCents: 2000}, nil)

	b, err := c.Payout(context.Background(), sellerID, id)
	require.NoError(t, err)
	require.EqualValues(t, 2000, b.Gross)
	require.EqualValues(t, 250, b.Fee)
	require.EqualValues(t, 1750, b.Payout)
}

func TestCatalog_CategoryCounts(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{})

	st.EXPECT().CategoryCounts(gomock.Any()).Return([]domain.CategoryCount{
		{Category: "Books", Count: 3},
		{Category: "Phones", Count: 2},
		// stored before the taxonomy knew "Phones"
		{Category: "Cell Phones", Count: 1},
	}, nil)

	counts, err := c.CategoryCounts(context.Background())
	require.NoError(t, err)

	categories := taxonomy.Default().Categories()
	require.Len(t, counts, len(categories))
	for i, cc := range counts {
		require.Equal(t, categories[i], cc.Category)
		switch cc.Category {
		case "Books":
			require.EqualValues(t, 3, cc.Count)
		case "Phones":
			require.EqualValues(t, 3, cc.Count)
		default:
			require.Zero(t, cc.Count, cc.Category)
		}
	}
}

func TestCatalog_Classify(t *testing.T) {
	_, c := newTestCatalog(t, catalog.Options{})

	m := c.Classify(context.Background(), "wireless smartphone with leather case", "")
	require.Equal(t, taxonomy.Match{Category: "Phones", Reason: taxonomy.ReasonKeyword, Keyword: "smartphone"}, m)
	require.Equal(t, taxonomy.DefaultVersion, c.TaxonomyVersion())
}

func TestCatalog_EnqueueRecategorize(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{MaxAttempts: 3, UniqueJobPeriod: time.Hour})
	after := domain.ProductID(uuid.New())

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			jobArgs, ok := args.(catalog.RecategorizeJobArgs)
			require.True(t, ok)
			require.Equal(t, uuid.UUID(after), jobArgs.After)
			require.Equal(t, taxonomy.DefaultVersion, jobArgs.TaxonomyVersion)

			opts := jobArgs.InsertOpts()
			require.Equal(t, 3, opts.MaxAttempts)
			require.True(t, opts.UniqueOpts.ByArgs)
			require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)
			require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)

			return false, nil
		},
	)

	added, err := c.EnqueueRecategorize(context.Background(), after)
	require.NoError(t, err)
	require.False(t, added)
}

func TestCatalog_RecategorizePage(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{BatchSize: 4, Concurrency: 2})

	ids := []domain.ProductID{
		domain.ProductID(uuid.New()), domain.ProductID(uuid.New()),
		domain.ProductID(uuid.New()), domain.ProductID(uuid.New()),
	}
	st.EXPECT().ProductsAfter(gomock.Any(), domain.ProductID{}, uint(4)).Return([]domain.Product{
		{ID: ids[0], Title: "cooking pot set", Category: "Other"},
		{ID: ids[1], Title: "Basketball", Category: "Sports"},
		{ID: ids[2], Title: "Model 42", LegacyCategory: "Shoes > Sneakers", Category: "Fashion"},
		{ID: ids[3], Title: "potato masher", Category: "Kitchen"},
	}, nil)

	var (
		mu      sync.Mutex
		updates = map[domain.ProductID]string{}
	)
	st.EXPECT().UpdateProductCategory(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, id domain.ProductID, category string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			updates[id] = category

			return true, nil
		},
	)

	res, err := c.RecategorizePage(context.Background(), domain.ProductID{})
	require.NoError(t, err)
	require.Equal(t, catalog.RecategorizeResult{Scanned: 4, Changed: 3, Next: ids[3], Done: false}, res)
	require.Equal(t, map[domain.ProductID]string{
		ids[0]: "Kitchen",
		ids[2]: "Shoes",
		ids[3]: "Other",
	}, updates)
}

func TestCatalog_RecategorizePage_NothingToDo(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{BatchSize: 10})
	after := domain.ProductID(uuid.New())
	id := domain.ProductID(uuid.New())

	st.EXPECT().ProductsAfter(gomock.Any(), after, uint(10)).Return([]domain.Product{
		{ID: id, Title: "Basketball", Category: "Sports"},
	}, nil)

	res, err := c.RecategorizePage(context.Background(), after)
	require.NoError(t, err)
	require.Equal(t, catalog.RecategorizeResult{Scanned: 1, Changed: 0, Next: id, Done: true}, res)
}

func TestCatalog_RecategorizePage_WriteError(t *testing.T) {
	st, c := newTestCatalog(t, catalog.Options{BatchSize: 10})
	boom := errors.New("boom")

	st.EXPECT().ProductsAfter(gomock.Any(), gomock.Any(), gomock.Any()).Return([]domain.Product{
		{ID: domain.ProductID(uuid.New()), Title: "cooking pot set", Category: "Other"},
	}, nil)
	st.EXPECT().UpdateProductCategory(gomock.Any(), gomock.Any(), "Kitchen").Return(false, boom)

	_, err := c.RecategorizePage(context.Background(), domain.ProductID{})
	require.ErrorIs(t, err, boom)
}
