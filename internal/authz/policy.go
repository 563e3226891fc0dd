// Package authz holds the single mutation-authorization rule for posts.
//
// The same rule is evaluated in two places: by the server before any
// update or delete (authoritative), and by the client before rendering
// edit/delete controls (advisory only). Keeping it in one shared package
// guarantees both gates cannot drift apart.
package authz

import (
	"strings"

	"github.com/daynu/herejpg/internal/common"
)

// CanMutate reports whether the actor may update or delete a post owned by
// ownerID. The rule: the actor owns the post, or the actor is an admin.
//
// IDs are compared as canonical strings because they may arrive in different
// representations (token claim vs. store record).
func CanMutate(actorID, actorRole, ownerID string) bool {
	if normalizeID(actorID) != "" && normalizeID(actorID) == normalizeID(ownerID) {
		return true
	}
	return strings.TrimSpace(actorRole) == common.RoleAdmin
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
