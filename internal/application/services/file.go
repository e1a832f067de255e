package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/domain/media"
	"file-manager-api/internal/domain/permission"
	"file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/mq"
	dto "file-manager-api/internal/interface/api/rest/dto/file"
)

// Quota caps how many active records a single role may own. CreateForm
// refuses only once the count is above Limit, while Store counts the records
// it is about to create, so an actor owning exactly Limit records can open
// the form but cannot add another one.
type Quota struct {
	RoleID user.RoleID
	Limit  int
}

func (q Quota) appliesTo(actor *user.User) bool {
	return actor.RoleID == q.RoleID
}

type FileService struct {
	gate             *permission.Gate
	fileRepository   domain.Repository
	mediaRepository  media.Repository
	userRepository   user.Repository
	folderRepository folder.Repository
	associator       ports.MediaAssociator
	sessions         ports.SessionStore
	s3               ports.S3Client
	mq               ports.EventPublisher
	mCounter         *prometheus.CounterVec
	quota            Quota
}

func NewFileService(
	gate *permission.Gate,
	fileRepository domain.Repository,
	mediaRepository media.Repository,
	userRepository user.Repository,
	folderRepository folder.Repository,
	associator ports.MediaAssociator,
	sessions ports.SessionStore,
	s3 ports.S3Client,
	mq ports.EventPublisher,
	mCounter *prometheus.CounterVec,
	quota Quota,
) ports.FileService {
	return &FileService{
		gate:             gate,
		fileRepository:   fileRepository,
		mediaRepository:  mediaRepository,
		userRepository:   userRepository,
		folderRepository: folderRepository,
		associator:       associator,
		sessions:         sessions,
		s3:               s3,
		mq:               mq,
		mCounter:         mCounter,
		quota:            quota,
	}
}

func (fs *FileService) authorize(actor *user.User, abilities ...permission.Ability) error {
	for _, a := range abilities {
		if !fs.gate.Allows(actor, a) {
			return ErrUnauthorized
		}
	}
	return nil
}

func (fs *FileService) publish(ctx context.Context, action string, actor *user.User, f dto.File) {
	fs.mq.Publish(ctx, mq.NewEvent(action, uint64(actor.ID), f))
}

// scope resolves the listing scope and remembers an explicit choice for later requests.
func (fs *FileService) scope(actor *user.User, requested domain.Scope) domain.Scope {
	if requested.Valid() {
		fs.sessions.SaveFilterPreference(actor.ID, string(requested))
		return requested
	}
	if stored, ok := fs.sessions.FilterPreference(actor.ID); ok && domain.Scope(stored).Valid() {
		return domain.Scope(stored)
	}
	return domain.ScopeAll
}

func (fs *FileService) List(ctx context.Context, actor *user.User, q domain.ListQuery) (*domain.Listing, error) {
	if err := fs.authorize(actor, permission.FileAccess); err != nil {
		return nil, err
	}
	if q.ShowDeleted {
		if err := fs.authorize(actor, permission.FileDelete); err != nil {
			return nil, err
		}
	}

	scope := fs.scope(actor, q.Scope)
	filter := domain.Filter{Trashed: q.ShowDeleted}
	if scope == domain.ScopeMy {
		owner := actor.ID
		filter.CreatedByID = &owner
	}

	files, err := fs.fileRepository.FetchFiles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch files: %w", err)
	}
	count, err := fs.fileRepository.CountUserFiles(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("count user files: %w", err)
	}

	return &domain.Listing{
		Files:          files,
		Scope:          scope,
		ShowDeleted:    q.ShowDeleted,
		UserFilesCount: count,
	}, nil
}

// CreateForm refuses a restricted actor who already owns more than the limit.
func (fs *FileService) CreateForm(ctx context.Context, actor *user.User) (*domain.CreateForm, error) {
	if err := fs.authorize(actor, permission.FileCreate); err != nil {
		return nil, err
	}

	count, err := fs.fileRepository.CountUserFiles(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("count user files: %w", err)
	}
	if fs.quota.appliesTo(actor) && count > fs.quota.Limit {
		return nil, ErrQuotaExceeded
	}

	folders, err := fs.folderRepository.FetchFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch folders: %w", err)
	}
	users, err := fs.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	return &domain.CreateForm{
		Folders:        folders,
		Users:          users,
		UserFilesCount: count,
		RoleID:         actor.RoleID,
	}, nil
}

// Store creates one record per media id, then links the media. The store-time
// quota counts the records about to be created.
func (fs *FileService) Store(ctx context.Context, actor *user.User, in domain.StoreInput) (domain.Files, error) {
	if err := fs.authorize(actor, permission.FileCreate); err != nil {
		return nil, err
	}
	if len(in.MediaIDs) == 0 {
		return nil, nil
	}

	if fs.quota.appliesTo(actor) {
		count, err := fs.fileRepository.CountUserFiles(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("count user files: %w", err)
		}
		if count+len(in.MediaIDs) > fs.quota.Limit {
			return nil, ErrQuotaExceeded
		}
	}

	created := make(domain.Files, 0, len(in.MediaIDs))
	for _, mediaID := range in.MediaIDs {
		f, err := fs.fileRepository.CreateFile(ctx, &domain.File{
			ID:          domain.ID(mediaID),
			UUID:        uuid.New(),
			FolderID:    in.FolderID,
			CreatedByID: actor.ID,
		})
		if err != nil {
			return nil, fmt.Errorf("create file %d: %w", mediaID, err)
		}

		created = append(created, f)
		fs.mCounter.WithLabelValues("file_created_total").Inc()
		fs.publish(ctx, mq.FileCreated, actor, dto.ToResponseFile(*f))
	}

	if err := fs.associator.Associate(ctx, in.MediaIDs); err != nil {
		return nil, err
	}

	return created, nil
}

func (fs *FileService) EditForm(ctx context.Context, actor *user.User, id domain.ID) (*domain.EditForm, error) {
	if err := fs.authorize(actor, permission.FileEdit); err != nil {
		return nil, err
	}

	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch file %d: %w", id, err)
	}
	if f == nil {
		return nil, ErrNotFound
	}

	folders, err := fs.folderRepository.FetchFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch folders: %w", err)
	}

	return &domain.EditForm{File: f, Folders: folders}, nil
}

func (fs *FileService) Update(ctx context.Context, actor *user.User, id domain.ID, in domain.UpdateInput) (*domain.File, error) {
	if err := fs.authorize(actor, permission.FileEdit); err != nil {
		return nil, err
	}

	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch file %d: %w", id, err)
	}
	if f == nil {
		return nil, ErrNotFound
	}

	// an omitted folder_id leaves the folder as is
	if in.FolderID != nil {
		f.FolderID = in.FolderID
	}
	updated, err := fs.fileRepository.UpdateFile(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("update file %d: %w", id, err)
	}
	// trashed between the read and the write
	if updated == nil {
		return nil, ErrNotFound
	}

	if err = fs.associator.Associate(ctx, in.MediaIDs); err != nil {
		return nil, err
	}

	fs.mCounter.WithLabelValues("file_updated_total").Inc()
	fs.publish(ctx, mq.FileUpdated, actor, dto.ToResponseFile(*updated))

	return updated, nil
}

func (fs *FileService) Show(ctx context.Context, actor *user.User, id domain.ID) (*domain.Details, error) {
	if err := fs.authorize(actor, permission.FileView); err != nil {
		return nil, err
	}

	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch file %d: %w", id, err)
	}
	if f == nil {
		return nil, ErrNotFound
	}

	ms, err := fs.mediaRepository.FetchMediaByModel(ctx, uint64(f.ID))
	if err != nil {
		return nil, fmt.Errorf("fetch media of file %d: %w", id, err)
	}
	links := make([]domain.MediaLink, 0, len(ms))
	for _, m := range ms {
		url, err := fs.s3.PresignDownloadURL(ctx, m.StorageKey)
		if err != nil {
			return nil, err
		}
		links = append(links, domain.MediaLink{Media: m, DownloadURL: url})
	}

	count, err := fs.fileRepository.CountUserFiles(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("count user files: %w", err)
	}

	return &domain.Details{File: f, Media: links, UserFilesCount: count}, nil
}

// Destroy soft-deletes an active record. Linked media are kept so Restore is lossless.
func (fs *FileService) Destroy(ctx context.Context, actor *user.User, id domain.ID) error {
	if err := fs.authorize(actor, permission.FileDelete); err != nil {
		return err
	}

	f, err := fs.fileRepository.SoftDeleteFile(ctx, id)
	if err != nil {
		return fmt.Errorf("soft delete file %d: %w", id, err)
	}
	if f == nil {
		return ErrNotFound
	}

	fs.mCounter.WithLabelValues("file_deleted_total").Inc()
	fs.publish(ctx, mq.FileDeleted, actor, dto.ToResponseFile(*f))

	return nil
}

// MassDestroy soft-deletes the active records among ids and returns the ones it touched.
// Unknown and already trashed ids are skipped.
func (fs *FileService) MassDestroy(ctx context.Context, actor *user.User, ids []domain.ID) ([]domain.ID, error) {
	if err := fs.authorize(actor, permission.FileDelete); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	deleted, err := fs.fileRepository.SoftDeleteFiles(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("soft delete files: %w", err)
	}

	for _, id := range deleted {
		fs.mCounter.WithLabelValues("file_deleted_total").Inc()
		fs.publish(ctx, mq.FileDeleted, actor, dto.File{
			ID:    uint64(id),
			State: domain.StateSoftDeleted.String(),
		})
	}

	return deleted, nil
}

func (fs *FileService) Restore(ctx context.Context, actor *user.User, id domain.ID) (*domain.File, error) {
	if err := fs.authorize(actor, permission.FileDelete); err != nil {
		return nil, err
	}

	f, err := fs.fileRepository.RestoreFile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("restore file %d: %w", id, err)
	}
	if f == nil {
		return nil, ErrNotFound
	}

	fs.mCounter.WithLabelValues("file_restored_total").Inc()
	fs.publish(ctx, mq.FileRestored, actor, dto.ToResponseFile(*f))

	return f, nil
}

// PermanentlyDelete removes a trashed record together with its media rows and
// blobs. Blobs go first so a failed call can be retried on the same record.
func (fs *FileService) PermanentlyDelete(ctx context.Context, actor *user.User, id domain.ID) error {
	if err := fs.authorize(actor, permission.FileDelete); err != nil {
		return err
	}

	f, err := fs.fileRepository.FetchTrashedFileByID(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch trashed file %d: %w", id, err)
	}
	if f == nil {
		return ErrNotFound
	}

	ms, err := fs.mediaRepository.FetchMediaByModel(ctx, uint64(f.ID))
	if err != nil {
		return fmt.Errorf("fetch media of file %d: %w", id, err)
	}
	if len(ms) > 0 {
		keys := make([]string, 0, len(ms))
		for _, m := range ms {
			keys = append(keys, m.StorageKey)
		}
		if err = fs.s3.DeleteObjects(ctx, keys); err != nil {
			return err
		}
	}

	if _, err = fs.mediaRepository.DeleteMediaByModel(ctx, uint64(f.ID)); err != nil {
		return fmt.Errorf("delete media of file %d: %w", id, err)
	}
	ok, err := fs.fileRepository.DeleteFile(ctx, f.ID)
	if err != nil {
		return fmt.Errorf("delete file %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}

	fs.mCounter.WithLabelValues("file_purged_total").Inc()
	fs.publish(ctx, mq.FilePurged, actor, dto.ToResponseFile(*f))

	return nil
}
