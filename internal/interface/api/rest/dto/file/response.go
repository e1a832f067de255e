package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID          uint64     `json:"id"`
		UUID        uuid.UUID  `json:"uuid"`
		FolderID    *uint64    `json:"folder_id"`
		CreatedByID uint64     `json:"created_by_id"`
		State       string     `json:"state"`
		CreatedAt   time.Time  `json:"created_at"`
		UpdatedAt   time.Time  `json:"updated_at"`
		DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	}
	Files []File

	Media struct {
		ID          uint64 `json:"id"`
		FileName    string `json:"file_name"`
		MimeType    string `json:"mime_type"`
		SizeBytes   uint64 `json:"size_bytes"`
		DownloadURL string `json:"download_url"`
	}
	Medias []Media

	Option struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	Options []Option

	ResponseData struct {
		Data           Files  `json:"data"`
		Filter         string `json:"filter"`
		ShowDeleted    bool   `json:"show_deleted"`
		UserFilesCount int    `json:"user_files_count"`
	}
	CreateFormResponse struct {
		Folders        Options `json:"folders"`
		CreatedBies    Options `json:"created_bies"`
		UserFilesCount int     `json:"user_files_count"`
		RoleID         int     `json:"role_id"`
	}
	EditFormResponse struct {
		File    File    `json:"file"`
		Folders Options `json:"folders"`
	}
	ShowResponse struct {
		File           File   `json:"file"`
		Media          Medias `json:"media"`
		UserFilesCount int    `json:"user_files_count"`
	}
)
