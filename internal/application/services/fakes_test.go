package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/domain/folder"
	"file-manager-api/internal/domain/media"
	"file-manager-api/internal/domain/permission"
	"file-manager-api/internal/domain/user"
	"file-manager-api/internal/infrastructure/mq"
)

var errNotUsed = errors.New("not used")

type FakeFileRepository struct {
	calls int

	FetchFilesFunc           func(ctx context.Context, filter domain.Filter) (domain.Files, error)
	FetchFileByIDFunc        func(ctx context.Context, id domain.ID) (*domain.File, error)
	FetchTrashedFileByIDFunc func(ctx context.Context, id domain.ID) (*domain.File, error)
	CountUserFilesFunc       func(ctx context.Context, userID user.ID) (int, error)
	CreateFileFunc           func(ctx context.Context, req *domain.File) (*domain.File, error)
	UpdateFileFunc           func(ctx context.Context, req *domain.File) (*domain.File, error)
	SoftDeleteFileFunc       func(ctx context.Context, id domain.ID) (*domain.File, error)
	SoftDeleteFilesFunc      func(ctx context.Context, ids []domain.ID) ([]domain.ID, error)
	RestoreFileFunc          func(ctx context.Context, id domain.ID) (*domain.File, error)
	DeleteFileFunc           func(ctx context.Context, id domain.ID) (bool, error)
}

func (f *FakeFileRepository) FetchFiles(ctx context.Context, filter domain.Filter) (domain.Files, error) {
	f.calls++
	if f.FetchFilesFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchFilesFunc(ctx, filter)
}
func (f *FakeFileRepository) FetchFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	f.calls++
	if f.FetchFileByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchFileByIDFunc(ctx, id)
}
func (f *FakeFileRepository) FetchTrashedFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	f.calls++
	if f.FetchTrashedFileByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchTrashedFileByIDFunc(ctx, id)
}
func (f *FakeFileRepository) CountUserFiles(ctx context.Context, userID user.ID) (int, error) {
	f.calls++
	if f.CountUserFilesFunc == nil {
		return 0, errNotUsed
	}
	return f.CountUserFilesFunc(ctx, userID)
}
func (f *FakeFileRepository) CreateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	f.calls++
	if f.CreateFileFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFileFunc(ctx, req)
}
func (f *FakeFileRepository) UpdateFile(ctx context.Context, req *domain.File) (*domain.File, error) {
	f.calls++
	if f.UpdateFileFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateFileFunc(ctx, req)
}
func (f *FakeFileRepository) SoftDeleteFile(ctx context.Context, id domain.ID) (*domain.File, error) {
	f.calls++
	if f.SoftDeleteFileFunc == nil {
		return nil, errNotUsed
	}
	return f.SoftDeleteFileFunc(ctx, id)
}
func (f *FakeFileRepository) SoftDeleteFiles(ctx context.Context, ids []domain.ID) ([]domain.ID, error) {
	f.calls++
	if f.SoftDeleteFilesFunc == nil {
		return nil, errNotUsed
	}
	return f.SoftDeleteFilesFunc(ctx, ids)
}
func (f *FakeFileRepository) RestoreFile(ctx context.Context, id domain.ID) (*domain.File, error) {
	f.calls++
	if f.RestoreFileFunc == nil {
		return nil, errNotUsed
	}
	return f.RestoreFileFunc(ctx, id)
}
func (f *FakeFileRepository) DeleteFile(ctx context.Context, id domain.ID) (bool, error) {
	f.calls++
	if f.DeleteFileFunc == nil {
		return false, errNotUsed
	}
	return f.DeleteFileFunc(ctx, id)
}

type FakeMediaRepository struct {
	calls int

	FetchMediaByIDFunc     func(ctx context.Context, id media.ID) (*media.Media, error)
	FetchMediaByModelFunc  func(ctx context.Context, modelID uint64) (media.Medias, error)
	SaveMediaFunc          func(ctx context.Context, m *media.Media) (*media.Media, error)
	DeleteMediaByModelFunc func(ctx context.Context, modelID uint64) (media.Medias, error)
}

func (f *FakeMediaRepository) FetchMediaByID(ctx context.Context, id media.ID) (*media.Media, error) {
	f.calls++
	if f.FetchMediaByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchMediaByIDFunc(ctx, id)
}
func (f *FakeMediaRepository) FetchMediaByModel(ctx context.Context, modelID uint64) (media.Medias, error) {
	f.calls++
	if f.FetchMediaByModelFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchMediaByModelFunc(ctx, modelID)
}
func (f *FakeMediaRepository) SaveMedia(ctx context.Context, m *media.Media) (*media.Media, error) {
	f.calls++
	if f.SaveMediaFunc == nil {
		return nil, errNotUsed
	}
	return f.SaveMediaFunc(ctx, m)
}
func (f *FakeMediaRepository) DeleteMediaByModel(ctx context.Context, modelID uint64) (media.Medias, error) {
	f.calls++
	if f.DeleteMediaByModelFunc == nil {
		return nil, errNotUsed
	}
	return f.DeleteMediaByModelFunc(ctx, modelID)
}

type FakeUserRepository struct {
	FetchUserByIDFunc func(ctx context.Context, id user.ID) (*user.User, error)
	FetchUsersFunc    func(ctx context.Context) (user.Users, error)
}

func (f *FakeUserRepository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *FakeUserRepository) FetchUsers(ctx context.Context) (user.Users, error) {
	if f.FetchUsersFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchUsersFunc(ctx)
}

type FakeFolderRepository struct {
	FetchFoldersFunc func(ctx context.Context) (folder.Folders, error)
}

func (f *FakeFolderRepository) FetchFolders(ctx context.Context) (folder.Folders, error) {
	if f.FetchFoldersFunc == nil {
		return nil, errNotUsed
	}
	return f.FetchFoldersFunc(ctx)
}

type FakeS3 struct {
	PresignDownloadURLFunc func(ctx context.Context, key string) (string, error)
	DeleteObjectsFunc      func(ctx context.Context, keys []string) error
}

func (f *FakeS3) PresignDownloadURL(ctx context.Context, key string) (string, error) {
	if f.PresignDownloadURLFunc == nil {
		return "", errNotUsed
	}
	return f.PresignDownloadURLFunc(ctx, key)
}
func (f *FakeS3) DeleteObjects(ctx context.Context, keys []string) error {
	if f.DeleteObjectsFunc == nil {
		return errNotUsed
	}
	return f.DeleteObjectsFunc(ctx, keys)
}

type FakeSessions struct {
	filters map[user.ID]string
}

func (f *FakeSessions) FilterPreference(actorID user.ID) (string, bool) {
	v, ok := f.filters[actorID]
	return v, ok
}
func (f *FakeSessions) SaveFilterPreference(actorID user.ID, filter string) {
	if f.filters == nil {
		f.filters = make(map[user.ID]string)
	}
	f.filters[actorID] = filter
}

type FakePublisher struct {
	mu     sync.Mutex
	events []mq.Event
}

func (f *FakePublisher) Publish(_ context.Context, e mq.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *FakePublisher) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Action
	}
	return out
}

type fixture struct {
	files    *FakeFileRepository
	media    *FakeMediaRepository
	users    *FakeUserRepository
	folders  *FakeFolderRepository
	s3       *FakeS3
	sessions *FakeSessions
	pub      *FakePublisher
	counter  *prometheus.CounterVec
	svc      *FileService
}

func newFixture(policy permission.Policy) *fixture {
	fx := &fixture{
		files:    &FakeFileRepository{},
		media:    &FakeMediaRepository{},
		users:    &FakeUserRepository{},
		folders:  &FakeFolderRepository{},
		s3:       &FakeS3{},
		sessions: &FakeSessions{},
		pub:      &FakePublisher{},
		counter: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "test_counters"},
			[]string{"result"},
		),
	}
	fx.svc = NewFileService(
		permission.NewGate(policy),
		fx.files,
		fx.media,
		fx.users,
		fx.folders,
		NewMediaAssociator(fx.media),
		fx.sessions,
		fx.s3,
		fx.pub,
		fx.counter,
		Quota{RoleID: permission.RoleRestricted, Limit: 5},
	).(*FileService)

	return fx
}

var (
	admin      = &user.User{ID: 1, Name: "Admin", RoleID: permission.RoleAdmin}
	restricted = &user.User{ID: 2, Name: "Bob", RoleID: permission.RoleRestricted}
	outsider   = &user.User{ID: 9, Name: "Guest", RoleID: 99}
)

func activeFile(id domain.ID, owner user.ID) *domain.File {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.File{ID: id, CreatedByID: owner, CreatedAt: now, UpdatedAt: now}
}

func trashedFile(id domain.ID, owner user.ID) *domain.File {
	f := activeFile(id, owner)
	at := f.CreatedAt.Add(time.Hour)
	f.DeletedAt = &at
	return f
}
