// Package common contains shared constants and sentinel errors used across
// herejpg components.
package common

// SessionCookieName is the name of the HTTP-only cookie that carries the
// signed session token between client and server.
const SessionCookieName = "token"

// RoleUser and RoleAdmin are the two roles a user record may carry.
// Admins pass the mutation policy for any post regardless of ownership.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
