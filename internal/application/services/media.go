package services

import (
	"context"
	"fmt"

	"file-manager-api/internal/application/ports"
	"file-manager-api/internal/domain/media"
)

type MediaAssociator struct {
	mediaRepository media.Repository
}

func NewMediaAssociator(mediaRepository media.Repository) ports.MediaAssociator {
	return &MediaAssociator{mediaRepository: mediaRepository}
}

// Associate points every media row at the file record sharing its id. Rows
// are saved one by one; a missing id stops the loop and earlier rows stay linked.
func (ma *MediaAssociator) Associate(ctx context.Context, ids []media.ID) error {
	for _, id := range ids {
		m, err := ma.mediaRepository.FetchMediaByID(ctx, id)
		if err != nil {
			return fmt.Errorf("fetch media %d: %w", id, err)
		}
		if m == nil {
			return fmt.Errorf("%w: id %d", ErrMediaNotFound, id)
		}

		owner := uint64(m.ID)
		m.ModelID = &owner
		m.ModelType = media.ModelType

		saved, err := ma.mediaRepository.SaveMedia(ctx, m)
		if err != nil {
			return fmt.Errorf("save media %d: %w", id, err)
		}
		if saved == nil {
			return fmt.Errorf("%w: id %d", ErrMediaNotFound, id)
		}
	}

	return nil
}
