package file

import (
	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/domain/media"
	"file-manager-api/internal/domain/user"
)

// Scope is the listing preference kept per actor session.
type Scope string

const (
	ScopeAll Scope = "all"
	ScopeMy  Scope = "my"
)

func (s Scope) Valid() bool { return s == ScopeAll || s == ScopeMy }

type (
	ListQuery struct {
		// Scope is empty when the request did not choose one.
		Scope       Scope
		ShowDeleted bool
	}
	Listing struct {
		Files          Files
		Scope          Scope
		ShowDeleted    bool
		UserFilesCount int
	}

	CreateForm struct {
		Folders        folder.Folders
		Users          user.Users
		UserFilesCount int
		RoleID         user.RoleID
	}
	EditForm struct {
		File    *File
		Folders folder.Folders
	}

	MediaLink struct {
		Media       *media.Media
		DownloadURL string
	}
	Details struct {
		File           *File
		Media          []MediaLink
		UserFilesCount int
	}

	StoreInput struct {
		MediaIDs []media.ID
		FolderID *folder.ID
	}
	UpdateInput struct {
		MediaIDs []media.ID
		FolderID *folder.ID
	}
)
