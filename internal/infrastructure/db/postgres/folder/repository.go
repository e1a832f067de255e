package folder

import (
	"context"

	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/infrastructure/db/postgres"
)

const SelectFolders = `
	SELECT id, name
	FROM folders
	ORDER BY name
`

type Repository struct {
	db postgres.DBTX
}

func NewRepository(db postgres.DBTX) folder.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFolders(ctx context.Context) (folder.Folders, error) {
	rows, err := r.db.Query(ctx, SelectFolders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs folder.Folders
	for rows.Next() {
		var id uint64
		f := new(folder.Folder)
		if err = rows.Scan(&id, &f.Name); err != nil {
			return nil, err
		}
		f.ID = folder.ID(id)
		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fs, nil
}
