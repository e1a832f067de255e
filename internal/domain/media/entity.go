package media

import "time"

// ModelType marks media owned by a file record.
const ModelType = "file"

type (
	ID    uint64
	Media struct {
		ID             ID
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
