package folder

import "context"

type Repository interface {
	FetchFolders(ctx context.Context) (Folders, error)
}
