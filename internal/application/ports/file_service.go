package ports

import (
	"context"

	"file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/media"
	"file-manager-api/internal/domain/user"
)

type FileService interface {
	List(ctx context.Context, actor *user.User, q file.ListQuery) (*file.Listing, error)
	CreateForm(ctx context.Context, actor *user.User) (*file.CreateForm, error)
	Store(ctx context.Context, actor *user.User, in file.StoreInput) (file.Files, error)
	EditForm(ctx context.Context, actor *user.User, id file.ID) (*file.EditForm, error)
	Update(ctx context.Context, actor *user.User, id file.ID, in file.UpdateInput) (*file.File, error)
	Show(ctx context.Context, actor *user.User, id file.ID) (*file.Details, error)
	Destroy(ctx context.Context, actor *user.User, id file.ID) error
	MassDestroy(ctx context.Context, actor *user.User, ids []file.ID) ([]file.ID, error)
	Restore(ctx context.Context, actor *user.User, id file.ID) (*file.File, error)
	PermanentlyDelete(ctx context.Context, actor *user.User, id file.ID) error
}

type MediaAssociator interface {
	Associate(ctx context.Context, ids []media.ID) error
}
