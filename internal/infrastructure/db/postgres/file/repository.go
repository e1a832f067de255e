package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/db/postgres"
)

var ErrFileAlreadyExists = domain.ErrAlreadyExists

type Repository struct {
	db postgres.DBTX
}

func NewRepository(db postgres.DBTX) domain.Repository {
	return &Repository{db: db}
}

func scanFile(row pgx.Row) (*File, error) {
	f := new(File)
	err := row.Scan(
		&f.ID,
		&f.UUID,
		&f.FolderID,
		&f.CreatedByID,

		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	)
	return f, err
}

// fetchOne treats a missing row as nil, nil.
func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*domain.File, error) {
	f, err := scanFile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFiles(ctx context.Context, filter domain.Filter) (domain.Files, error) {
	query := SelectActiveFiles
	if filter.Trashed {
		query = SelectTrashedFiles
	}

	var owner any
	if filter.CreatedByID != nil {
		owner = uint64(*filter.CreatedByID)
	}

	rows, err := r.db.Query(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) FetchFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	return r.fetchOne(ctx, SelectActiveFileByID, uint64(id))
}

func (r *Repository) FetchTrashedFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	return r.fetchOne(ctx, SelectTrashedFileByID, uint64(id))
}

func (r *Repository) CountUserFiles(ctx context.Context, userID user.ID) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, CountActiveFilesByUser, uint64(userID)).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}

func (r *Repository) CreateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	f, err := scanFile(r.db.QueryRow(
		ctx,
		InsertFile,
		uint64(req.ID), req.UUID, (*uint64)(req.FolderID), uint64(req.CreatedByID),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, fmt.Errorf("%w: id %d", ErrFileAlreadyExists, req.ID)
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) UpdateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	return r.fetchOne(ctx, UpdateFileByID, (*uint64)(req.FolderID), uint64(req.ID))
}

func (r *Repository) SoftDeleteFile(ctx context.Context, id domain.ID) (*domain.File, error) {
	return r.fetchOne(ctx, SoftDeleteFileByID, uint64(id))
}

func (r *Repository) SoftDeleteFiles(ctx context.Context, ids []domain.ID) ([]domain.ID, error) {
	raw := make([]uint64, len(ids))
	for i, id := range ids {
		raw[i] = uint64(id)
	}

	rows, err := r.db.Query(ctx, SoftDeleteFilesByIDs, raw)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deleted []domain.ID
	for rows.Next() {
		var id uint64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		deleted = append(deleted, domain.ID(id))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deleted, nil
}

func (r *Repository) RestoreFile(ctx context.Context, id domain.ID) (*domain.File, error) {
	return r.fetchOne(ctx, RestoreFileByID, uint64(id))
}

func (r *Repository) DeleteFile(ctx context.Context, id domain.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteTrashedFileByID, uint64(id))
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
