package media

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "file-manager-api/internal/domain/media"
	"file-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DBTX
}

func NewRepository(db postgres.DBTX) domain.Repository {
	return &Repository{db: db}
}

func scanMedia(row pgx.Row) (*Media, error) {
	m := new(Media)
	err := row.Scan(
		&m.ID,
		&m.ModelType,
		&m.ModelID,
		&m.CollectionName,
		&m.FileName,
		&m.MimeType,
		&m.SizeBytes,
		&m.StorageKey,

		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) (domain.Medias, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms Medias
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ms), nil
}

func (r *Repository) FetchMediaByID(ctx context.Context, id domain.ID) (*domain.Media, error) {
	m, err := scanMedia(r.db.QueryRow(ctx, SelectMediaByID, uint64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) FetchMediaByModel(ctx context.Context, modelID uint64) (domain.Medias, error) {
	return r.collect(ctx, SelectMediaByModel, domain.ModelType, modelID)
}

// SaveMedia persists the owner columns of an existing media row.
func (r *Repository) SaveMedia(ctx context.Context, req *domain.Media) (*domain.Media, error) {
	m, err := scanMedia(r.db.QueryRow(ctx, UpdateMediaOwner, req.ModelType, req.ModelID, uint64(req.ID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) DeleteMediaByModel(ctx context.Context, modelID uint64) (domain.Medias, error) {
	return r.collect(ctx, DeleteMediaByModel, domain.ModelType, modelID)
}
