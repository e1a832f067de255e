package media

import "time"

type (
	Media struct {
		ID             uint64
		ModelType      string
		ModelID        *uint64
		CollectionName string
		FileName       string
		MimeType       string
		SizeBytes      uint64
		StorageKey     string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Medias []*Media
)
