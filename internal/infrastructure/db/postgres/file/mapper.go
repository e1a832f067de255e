package file

import (
	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:          domain.ID(model.ID),
		UUID:        model.UUID,
		FolderID:    (*folder.ID)(model.FolderID),
		CreatedByID: user.ID(model.CreatedByID),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
