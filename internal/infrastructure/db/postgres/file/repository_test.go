package file

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/domain/user"
)

var columns = []string{"id", "uuid", "folder_id", "created_by_id", "created_at", "updated_at", "deleted_at"}

func newRepoWithMock(t *testing.T) (domain.Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRepository(mock), mock
}

func u64(v uint64) *uint64 { return &v }

func fileRow(rows *pgxmock.Rows, id uint64, owner uint64, folderID *uint64, deletedAt *time.Time) *pgxmock.Rows {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(id, uuid.NewString(), folderID, owner, now, now, deletedAt)
}

func TestRepository_FetchFiles(t *testing.T) {
	owner := user.ID(7)
	deletedAt := time.Now()

	tests := []struct {
		name      string
		filter    domain.Filter
		query     string
		ownerArg  any
		rows      func() *pgxmock.Rows
		wantIDs   []domain.ID
		wantState domain.State
	}{
		{
			name:     "active, every owner",
			filter:   domain.Filter{},
			query:    SelectActiveFiles,
			ownerArg: nil,
			rows: func() *pgxmock.Rows {
				r := pgxmock.NewRows(columns)
				fileRow(r, 1, 7, u64(3), (*time.Time)(nil))
				fileRow(r, 2, 8, (*uint64)(nil), (*time.Time)(nil))
				return r
			},
			wantIDs:   []domain.ID{1, 2},
			wantState: domain.StateActive,
		},
		{
			name:     "trashed, single owner",
			filter:   domain.Filter{CreatedByID: &owner, Trashed: true},
			query:    SelectTrashedFiles,
			ownerArg: uint64(7),
			rows: func() *pgxmock.Rows {
				return fileRow(pgxmock.NewRows(columns), 5, 7, (*uint64)(nil), &deletedAt)
			},
			wantIDs:   []domain.ID{5},
			wantState: domain.StateSoftDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).
				WithArgs(tt.ownerArg).
				WillReturnRows(tt.rows())

			fs, err := repo.FetchFiles(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, fs.IDs())
			for _, f := range fs {
				assert.Equal(t, tt.wantState, f.State())
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FetchFiles_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(SelectActiveFiles)).
		WithArgs(nil).
		WillReturnError(errors.New("boom"))

	_, err := repo.FetchFiles(context.Background(), domain.Filter{})
	require.Error(t, err)
}

func TestRepository_FetchFileByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectActiveFileByID)).
			WithArgs(uint64(4)).
			WillReturnRows(fileRow(pgxmock.NewRows(columns), 4, 9, u64(2), (*time.Time)(nil)))

		f, err := repo.FetchFileByID(context.Background(), 4)
		require.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, domain.ID(4), f.ID)
		assert.Equal(t, user.ID(9), f.CreatedByID)
		require.NotNil(t, f.FolderID)
		assert.Equal(t, folder.ID(2), *f.FolderID)
	})

	t.Run("missing is nil, nil", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectActiveFileByID)).
			WithArgs(uint64(4)).
			WillReturnRows(pgxmock.NewRows(columns))

		f, err := repo.FetchFileByID(context.Background(), 4)
		require.NoError(t, err)
		assert.Nil(t, f)
	})
}

func TestRepository_FetchTrashedFileByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	deletedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(SelectTrashedFileByID)).
		WithArgs(uint64(4)).
		WillReturnRows(fileRow(pgxmock.NewRows(columns), 4, 9, (*uint64)(nil), &deletedAt))

	f, err := repo.FetchTrashedFileByID(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, domain.StateSoftDeleted, f.State())
}

func TestRepository_CountUserFiles(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(CountActiveFilesByUser)).
		WithArgs(uint64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.CountUserFiles(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRepository_CreateFile(t *testing.T) {
	id := uuid.New()
	folderID := folder.ID(3)
	req := &domain.File{ID: 10, UUID: id, FolderID: &folderID, CreatedByID: 2}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
			WithArgs(uint64(10), id, u64(3), uint64(2)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(uint64(10), id.String(), u64(3), uint64(2), now, now, (*time.Time)(nil)))

		f, err := repo.CreateFile(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, id, f.UUID)
		assert.Equal(t, domain.StateActive, f.State())
	})

	t.Run("unique violation", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(InsertFile)).
			WithArgs(uint64(10), id, u64(3), uint64(2)).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := repo.CreateFile(context.Background(), req)
		require.ErrorIs(t, err, ErrFileAlreadyExists)
	})
}

func TestRepository_UpdateFile_Missing(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(UpdateFileByID)).
		WithArgs((*uint64)(nil), uint64(8)).
		WillReturnRows(pgxmock.NewRows(columns))

	f, err := repo.UpdateFile(context.Background(), &domain.File{ID: 8})
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestRepository_SoftDeleteFile(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	deletedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(SoftDeleteFileByID)).
		WithArgs(uint64(8)).
		WillReturnRows(fileRow(pgxmock.NewRows(columns), 8, 1, (*uint64)(nil), &deletedAt))

	f, err := repo.SoftDeleteFile(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, domain.StateSoftDeleted, f.State())
}

func TestRepository_SoftDeleteFiles_SkipsMissing(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(SoftDeleteFilesByIDs)).
		WithArgs([]uint64{1, 2, 99}).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(uint64(1)).AddRow(uint64(2)))

	ids, err := repo.SoftDeleteFiles(context.Background(), []domain.ID{1, 2, 99})
	require.NoError(t, err)
	assert.Equal(t, []domain.ID{1, 2}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RestoreFile(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(RestoreFileByID)).
		WithArgs(uint64(8)).
		WillReturnRows(fileRow(pgxmock.NewRows(columns), 8, 1, u64(4), (*time.Time)(nil)))

	f, err := repo.RestoreFile(context.Background(), 8)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, domain.StateActive, f.State())
}

func TestRepository_DeleteFile(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"trashed row removed", 1, true},
		{"active or missing row untouched", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			mock.ExpectExec(regexp.QuoteMeta(DeleteTrashedFileByID)).
				WithArgs(uint64(8)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			ok, err := repo.DeleteFile(context.Background(), 8)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
