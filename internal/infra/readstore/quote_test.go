//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-admin/internal/infra"
	"venue-admin/internal/infra/converter"
	"venue-admin/internal/infra/db"
	"venue-admin/internal/infra/readstore"
	"venue-admin/internal/pkg/pgconv"
	"venue-admin/tests/common/builder"
	readstoremock "venue-admin/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuoteReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	record := builder.NewQuoteBuilder().WithAddOn("Chairs", "3", 10).BuildRecord()
	row, err := converter.QuoteToRow(record)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockQuoteViewQueries, db.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: returns the quote view",
			setupMock: func(mock *readstoremock.MockQuoteViewQueries, dbtx db.DBTX) {
				mock.EXPECT().GetQuoteByID(ctx, dbtx, record.ID).Return(row, nil)
			},
		},
		{
			name: "error: quote not found",
			setupMock: func(mock *readstoremock.MockQuoteViewQueries, dbtx db.DBTX) {
				mock.EXPECT().GetQuoteByID(ctx, dbtx, record.ID).Return(db.QuoteRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *readstoremock.MockQuoteViewQueries, dbtx db.DBTX) {
				mock.EXPECT().GetQuoteByID(ctx, dbtx, record.ID).Return(db.QuoteRow{}, errors.New("connection refused"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: corrupt row",
			setupMock: func(mock *readstoremock.MockQuoteViewQueries, dbtx db.DBTX) {
				bad := row
				bad.Subtotal = "not-a-number"
				mock.EXPECT().GetQuoteByID(ctx, dbtx, record.ID).Return(bad, nil)
			},
			expectKind: infra.KindInvalidData,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockQuoteViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewQuoteReadStore(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			view, err := store.FindByID(ctx, record.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, record.ID, view.ID)
			assert.Equal(t, record.ActorID, view.ActorID)
			assert.Len(t, view.AddOns, 1)
			assert.True(t, record.Result.TotalPrice.Equal(view.Result.TotalPrice))
		})
	}
}

func TestQuoteReadStore_List(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	created := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	rows := []db.QuoteListRow{
		{ID: uuid.New(), GuestCount: 120, Subtotal: "2050", TotalPrice: "2193.5", CreatedAt: pgconv.TimeToPgtype(created)},
		{ID: uuid.New(), GuestCount: 40, Subtotal: "1750", TotalPrice: "1872.5", CreatedAt: pgconv.TimeToPgtype(created.Add(-time.Hour))},
	}

	t.Run("first page maps every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockQuoteViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewQuoteReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListQuotesByActorFirstPage(ctx, mockDB, actorID, int32(21)).Return(rows, nil)

		items, err := store.FindByActorFirstPage(ctx, actorID, 21)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, rows[0].ID, items[0].ID)
		assert.Equal(t, 40, items[1].GuestCount)
	})

	t.Run("keyset page passes the cursor through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockQuoteViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewQuoteReadStore(mockQueries, mockDB)
		lastID := uuid.New()

		mockQueries.EXPECT().ListQuotesByActorKeyset(ctx, mockDB, actorID, created, lastID, int32(5)).Return(rows[1:], nil)

		items, err := store.FindByActorKeyset(ctx, actorID, created, lastID, 5)

		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockQuoteViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewQuoteReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().ListQuotesByActorFirstPage(ctx, mockDB, actorID, int32(21)).Return(nil, nil)

		items, err := store.FindByActorFirstPage(ctx, actorID, 21)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("error: corrupt list row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockQuoteViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewQuoteReadStore(mockQueries, mockDB)

		bad := []db.QuoteListRow{{ID: uuid.New(), Subtotal: "x", TotalPrice: "1"}}
		mockQueries.EXPECT().ListQuotesByActorFirstPage(ctx, mockDB, actorID, int32(21)).Return(bad, nil)

		_, err := store.FindByActorFirstPage(ctx, actorID, 21)

		assert.True(t, infra.IsKind(err, infra.KindInvalidData))
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
