package file

const (
	fileColumns = `id, uuid, folder_id, created_by_id, created_at, updated_at, deleted_at`

	SelectActiveFiles = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE deleted_at IS NULL AND ($1::bigint IS NULL OR created_by_id = $1)
		ORDER BY id
	`
	SelectTrashedFiles = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE deleted_at IS NOT NULL AND ($1::bigint IS NULL OR created_by_id = $1)
		ORDER BY deleted_at DESC, id
	`
	SelectActiveFileByID = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1 AND deleted_at IS NULL
	`
	SelectTrashedFileByID = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1 AND deleted_at IS NOT NULL
	`
	CountActiveFilesByUser = `
		SELECT count(*)
		FROM files
		WHERE created_by_id = $1 AND deleted_at IS NULL
	`
	InsertFile = `
		INSERT INTO files (id, uuid, folder_id, created_by_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + fileColumns
	UpdateFileByID = `
		UPDATE files
		SET folder_id = $1,
		    updated_at = now()
		WHERE id = $2 AND deleted_at IS NULL
		RETURNING ` + fileColumns
	SoftDeleteFileByID = `
		UPDATE files
		SET deleted_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + fileColumns
	SoftDeleteFilesByIDs = `
		UPDATE files
		SET deleted_at = now()
		WHERE id = ANY($1) AND deleted_at IS NULL
		RETURNING id
	`
	RestoreFileByID = `
		UPDATE files
		SET deleted_at = NULL,
		    updated_at = now()
		WHERE id = $1 AND deleted_at IS NOT NULL
		RETURNING ` + fileColumns
	DeleteTrashedFileByID = `
		DELETE FROM files
		WHERE id = $1 AND deleted_at IS NOT NULL
	`
)
