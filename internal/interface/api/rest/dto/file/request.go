package file

type (
	StoreRequest struct {
		FilenameIDs []uint64 `json:"filename_id"`
		FolderID    *uint64  `json:"folder_id"`
	}
	UpdateRequest struct {
		FilenameIDs []uint64 `json:"filename_id"`
		FolderID    *uint64  `json:"folder_id"`
	}
	MassDestroyRequest struct {
		IDs []uint64 `json:"ids"`
	}
)
