//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-admin/internal/infra"
	"venue-admin/internal/infra/db"
	"venue-admin/internal/infra/repository"
	"venue-admin/tests/common/builder"
	repositorymock "venue-admin/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Quote Tests
// =============================================================================

func TestQuoteRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockQuoteWriteQueries, db.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: quote created with the stored timestamp",
			setupMock: func(mock *repositorymock.MockQuoteWriteQueries, tx db.DBTX) {
				mock.EXPECT().CreateQuote(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ db.DBTX, arg db.QuoteRow) (pgtype.Timestamptz, error) {
						assert.Equal(t, "2193.5", arg.TotalPrice)
						assert.Equal(t, "0.07", arg.TaxRate)
						return pgtype.Timestamptz{Time: createdAt, Valid: true}, nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockQuoteWriteQueries, tx db.DBTX) {
				mock.EXPECT().CreateQuote(ctx, tx, gomock.Any()).Return(pgtype.Timestamptz{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: duplicate quote id",
			setupMock: func(mock *repositorymock.MockQuoteWriteQueries, tx db.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateQuote(ctx, tx, gomock.Any()).Return(pgtype.Timestamptz{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockQuoteWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewQuoteRepository(mockQueries)

			record := builder.NewQuoteBuilder().BuildRecord()
			tc.setupMock(mockQueries, mockDB)

			saved, actualError := repo.Create(ctx, mockDB, record)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, record.ID, saved.ID)
			assert.Equal(t, createdAt, saved.CreatedAt)
			assert.NotSame(t, record, saved)
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use the queries mock instead.")
}
