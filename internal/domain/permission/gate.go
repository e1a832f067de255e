// Package permission maps an actor's role to the file abilities it holds.
package permission

import (
	"file-manager-api/internal/domain/user"
)

type Ability string

const (
	FileAccess Ability = "file_access"
	FileCreate Ability = "file_create"
	FileEdit   Ability = "file_edit"
	FileView   Ability = "file_view"
	FileDelete Ability = "file_delete"
)

const (
	RoleAdmin      user.RoleID = 1
	RoleRestricted user.RoleID = 2
)

// Policy lists the abilities granted to each role.
type Policy map[user.RoleID][]Ability

// DefaultPolicy grants every file ability to both built-in roles; the
// restricted role is limited by the creation quota, not by abilities.
func DefaultPolicy() Policy {
	all := []Ability{FileAccess, FileCreate, FileEdit, FileView, FileDelete}
	return Policy{
		RoleAdmin:      all,
		RoleRestricted: all,
	}
}

type Gate struct {
	grants map[user.RoleID]map[Ability]struct{}
}

func NewGate(p Policy) *Gate {
	grants := make(map[user.RoleID]map[Ability]struct{}, len(p))
	for role, abilities := range p {
		set := make(map[Ability]struct{}, len(abilities))
		for _, a := range abilities {
			set[a] = struct{}{}
		}
		grants[role] = set
	}
	return &Gate{grants: grants}
}

// Allows reports whether actor holds ability. A nil actor is unauthenticated and always denied.
func (g *Gate) Allows(actor *user.User, ability Ability) bool {
	if actor == nil {
		return false
	}
	_, ok := g.grants[actor.RoleID][ability]
	return ok
}
