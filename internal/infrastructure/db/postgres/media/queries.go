package media

const (
	mediaColumns = `id, model_type, model_id, collection_name, file_name, mime_type, size_bytes, storage_key, created_at, updated_at`

	SelectMediaByID = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE id = $1
	`
	SelectMediaByModel = `
		SELECT ` + mediaColumns + `
		FROM media
		WHERE model_type = $1 AND model_id = $2
		ORDER BY id
	`
	UpdateMediaOwner = `
		UPDATE media
		SET model_type = $1,
		    model_id = $2,
		    updated_at = now()
		WHERE id = $3
		RETURNING ` + mediaColumns
	DeleteMediaByModel = `
		DELETE FROM media
		WHERE model_type = $1 AND model_id = $2
		RETURNING ` + mediaColumns
)
