package media

import "context"

type Repository interface {
	// FetchMediaByID returns nil, nil when the id does not resolve.
	FetchMediaByID(ctx context.Context, id ID) (*Media, error)
	FetchMediaByModel(ctx context.Context, modelID uint64) (Medias, error)
	SaveMedia(ctx context.Context, m *Media) (*Media, error)
	DeleteMediaByModel(ctx context.Context, modelID uint64) (Medias, error)
}
