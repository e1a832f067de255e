package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID          uint64
		UUID        uuid.UUID
		FolderID    *uint64
		CreatedByID uint64

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Files []*File
)
