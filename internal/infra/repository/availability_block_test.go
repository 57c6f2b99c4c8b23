//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/tests/common/builder"
	repositorymock "appointment-engine/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBlockRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBlockWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: block created",
			setupMock: func(mock *repositorymock.MockBlockWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBlock(ctx, tx, gomock.Any()).Return(uuid.New(), nil)
			},
		},
		{
			name: "error: same window already stored",
			setupMock: func(mock *repositorymock.MockBlockWriteQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateBlock(ctx, tx, gomock.Any()).Return(uuid.Nil, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: unknown staff member",
			setupMock: func(mock *repositorymock.MockBlockWriteQueries, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateBlock(ctx, tx, gomock.Any()).Return(uuid.Nil, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBlockWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBlock(ctx, tx, gomock.Any()).Return(uuid.Nil, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBlockWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBlockRepository(mockQueries, mockDB)

			block, err := builder.NewBlockBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			id, actualError := repo.Create(ctx, mockDB, block)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, actualError)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

func TestBlockRepository_InsertIfAbsent(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expected      bool
		expectedError bool
	}{
		{name: "success: new block written", affected: 1, expected: true},
		{name: "success: existing block left alone", affected: 0, expected: false},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBlockWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBlockRepository(mockQueries, mockDB)

			block := builder.NewBlockBuilder().WithStaff(uuid.New()).MustBuildDomain()
			mockQueries.EXPECT().
				InsertBlockIfAbsent(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertBlockIfAbsentParams) (int64, error) {
					assert.Equal(t, block.BusinessID(), arg.BusinessID)
					assert.True(t, arg.StaffID.Valid)
					return tc.affected, tc.queryErr
				})

			inserted, err := repo.InsertIfAbsent(ctx, mockDB, block)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, inserted)
		})
	}
}

func TestBlockRepository_Delete(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	blockID := uuid.New()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: block deleted", affected: 1},
		{name: "error: block belongs to another business", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errors.New("connection reset"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBlockWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBlockRepository(mockQueries, mockDB)

			mockQueries.EXPECT().
				DeleteBlock(ctx, mockDB, sqlc.DeleteBlockParams{ID: blockID, BusinessID: businessID}).
				Return(tc.affected, tc.queryErr)

			err := repo.Delete(ctx, mockDB, businessID, blockID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			} else {
				assert.NoError(t, err)
			}
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
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
