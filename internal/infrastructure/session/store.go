// Package session keeps per-actor listing preferences in an expiring in-process cache.
package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"file-manager-api/internal/domain/user"
)

type Store struct {
	filters *expirable.LRU[user.ID, string]
}

func New(size int, ttl time.Duration) *Store {
	return &Store{
		filters: expirable.NewLRU[user.ID, string](size, nil, ttl),
	}
}

func (s *Store) FilterPreference(actorID user.ID) (string, bool) {
	return s.filters.Get(actorID)
}

func (s *Store) SaveFilterPreference(actorID user.ID, filter string) {
	s.filters.Add(actorID, filter)
}
