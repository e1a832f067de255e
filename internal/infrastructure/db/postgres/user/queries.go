package user

const (
	SelectUsers = `
		SELECT id, name, email, role_id, created_at, updated_at
		FROM users
		ORDER BY name
	`
	SelectUserByID = `
		SELECT id, name, email, role_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`
)
