package ports

import "file-manager-api/internal/domain/user"

type SessionStore interface {
	FilterPreference(actorID user.ID) (string, bool)
	SaveFilterPreference(actorID user.ID, filter string)
}
