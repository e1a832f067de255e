package file

import (
	"context"
	"errors"

	"file-manager-api/internal/domain/user"
)

// ErrAlreadyExists is returned by CreateFile when the id is taken, trashed rows included.
var ErrAlreadyExists = errors.New("file record already exists")

// Repository methods that look up a single record return nil, nil when it
// does not exist in the expected state.
type Repository interface {
	FetchFiles(ctx context.Context, filter Filter) (Files, error)
	FetchFileByID(ctx context.Context, id ID) (*File, error)
	FetchTrashedFileByID(ctx context.Context, id ID) (*File, error)
	CountUserFiles(ctx context.Context, userID user.ID) (int, error)
	CreateFile(ctx context.Context, req *File) (*File, error)
	UpdateFile(ctx context.Context, req *File) (*File, error)
	SoftDeleteFile(ctx context.Context, id ID) (*File, error)
	SoftDeleteFiles(ctx context.Context, ids []ID) ([]ID, error)
	RestoreFile(ctx context.Context, id ID) (*File, error)
	DeleteFile(ctx context.Context, id ID) (bool, error)
}
