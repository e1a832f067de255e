package file

import (
	"file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/domain/media"
	"file-manager-api/internal/domain/user"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		ID:          uint64(fDomain.ID),
		UUID:        fDomain.UUID,
		FolderID:    (*uint64)(fDomain.FolderID),
		CreatedByID: uint64(fDomain.CreatedByID),
		State:       fDomain.State().String(),
		CreatedAt:   fDomain.CreatedAt,
		UpdatedAt:   fDomain.UpdatedAt,
		DeletedAt:   fDomain.DeletedAt,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}

func ToResponseListing(l file.Listing) ResponseData {
	return ResponseData{
		Data:           ToResponseFiles(l.Files),
		Filter:         string(l.Scope),
		ShowDeleted:    l.ShowDeleted,
		UserFilesCount: l.UserFilesCount,
	}
}

func ToResponseCreateForm(f file.CreateForm) CreateFormResponse {
	return CreateFormResponse{
		Folders:        folderOptions(f.Folders),
		CreatedBies:    userOptions(f.Users),
		UserFilesCount: f.UserFilesCount,
		RoleID:         int(f.RoleID),
	}
}

func ToResponseEditForm(f file.EditForm) EditFormResponse {
	return EditFormResponse{
		File:    ToResponseFile(*f.File),
		Folders: folderOptions(f.Folders),
	}
}

func ToResponseDetails(d file.Details) ShowResponse {
	ms := make(Medias, len(d.Media))
	for idx, l := range d.Media {
		ms[idx] = toResponseMedia(l.Media, l.DownloadURL)
	}

	return ShowResponse{
		File:           ToResponseFile(*d.File),
		Media:          ms,
		UserFilesCount: d.UserFilesCount,
	}
}

func ToDomainStore(req StoreRequest) file.StoreInput {
	return file.StoreInput{
		MediaIDs: toMediaIDs(req.FilenameIDs),
		FolderID: (*folder.ID)(req.FolderID),
	}
}

func ToDomainUpdate(req UpdateRequest) file.UpdateInput {
	return file.UpdateInput{
		MediaIDs: toMediaIDs(req.FilenameIDs),
		FolderID: (*folder.ID)(req.FolderID),
	}
}

func ToDomainIDs(ids []uint64) []file.ID {
	out := make([]file.ID, len(ids))
	for i, id := range ids {
		out[i] = file.ID(id)
	}
	return out
}

func toMediaIDs(ids []uint64) []media.ID {
	out := make([]media.ID, len(ids))
	for i, id := range ids {
		out[i] = media.ID(id)
	}
	return out
}

func toResponseMedia(m *media.Media, downloadURL string) Media {
	return Media{
		ID:          uint64(m.ID),
		FileName:    m.FileName,
		MimeType:    m.MimeType,
		SizeBytes:   m.SizeBytes,
		DownloadURL: downloadURL,
	}
}

func folderOptions(fs folder.Folders) Options {
	opts := make(Options, len(fs))
	for idx, f := range fs {
		opts[idx] = Option{ID: uint64(f.ID), Name: f.Name}
	}
	return opts
}

func userOptions(us user.Users) Options {
	opts := make(Options, len(us))
	for idx, u := range us {
		opts[idx] = Option{ID: uint64(u.ID), Name: u.Name}
	}
	return opts
}
