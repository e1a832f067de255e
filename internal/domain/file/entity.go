package file

import (
	"time"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/domain/user"
)

// State is derived from DeletedAt; a purged record has no state because the row is gone.
type State uint8

const (
	StateActive State = iota + 1
	StateSoftDeleted
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSoftDeleted:
		return "soft_deleted"
	default:
		return "unknown"
	}
}

type (
	ID   uint64
	File struct {
		ID          ID
		UUID        uuid.UUID
		FolderID    *folder.ID
		CreatedByID user.ID

		CreatedAt time.Time
		UpdatedAt time.Time
		DeletedAt *time.Time
	}
	Files []*File

	// Filter narrows a listing. CreatedByID nil means every owner.
	Filter struct {
		CreatedByID *user.ID
		Trashed     bool
	}
)

func (f *File) State() State {
	if f.DeletedAt != nil {
		return StateSoftDeleted
	}
	return StateActive
}

func (fs Files) IDs() []ID {
	ids := make([]ID, len(fs))
	for i, f := range fs {
		ids[i] = f.ID
	}
	return ids
}
