package services

import "errors"

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("file record not found")
	ErrQuotaExceeded = errors.New("file quota exceeded")
	ErrMediaNotFound = errors.New("media not found")
)
