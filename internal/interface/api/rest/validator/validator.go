package validator

import (
	"errors"
	"strconv"
	"strings"

	domain "file-manager-api/internal/domain/file"
	"file-manager-api/internal/interface/api/rest/dto/file"
)

func ValidateID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// ValidateListQuery treats an empty or unknown filter as not chosen, so the
// remembered one applies.
func ValidateListQuery(filter, showDeleted string) (domain.ListQuery, map[string]string) {
	errs := make(map[string]string)
	var q domain.ListQuery

	if scope := domain.Scope(strings.TrimSpace(filter)); scope.Valid() {
		q.Scope = scope
	}

	switch showDeleted {
	case "", "0":
	case "1":
		q.ShowDeleted = true
	default:
		errs["show_deleted"] = "show_deleted must be 0 or 1"
	}

	if len(errs) == 0 {
		return q, nil
	}
	return q, errs
}

func ValidateStore(r file.StoreRequest) map[string]string {
	errs := make(map[string]string)

	if len(r.FilenameIDs) == 0 {
		errs["filename_id"] = "at least one uploaded media id is required"
	} else if msg := checkIDs(r.FilenameIDs); msg != "" {
		errs["filename_id"] = msg
	}
	if r.FolderID != nil && *r.FolderID == 0 {
		errs["folder_id"] = "folder_id must be a positive integer"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUpdate(r file.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if msg := checkIDs(r.FilenameIDs); msg != "" {
		errs["filename_id"] = msg
	}
	if r.FolderID != nil && *r.FolderID == 0 {
		errs["folder_id"] = "folder_id must be a positive integer"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// UniqueIDs drops repeated ids and keeps the first-seen order. Unknown ids are
// left in; the mass delete skips them.
func UniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func checkIDs(ids []uint64) string {
	seen := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			return "ids must be positive integers"
		}
		if _, dup := seen[id]; dup {
			return "ids must be unique"
		}
		seen[id] = struct{}{}
	}
	return ""
}
