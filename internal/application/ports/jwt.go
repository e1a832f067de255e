package ports

import (
	"file-manager-api/internal/infrastructure/jwt"
)

type TokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}
