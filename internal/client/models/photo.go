// Package models holds the client-side view models: the photo posts the map
// renders and the cached viewer identity.
package models

import "time"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Photo mirrors the server's post payload. The client keeps an ordered
// sequence of these as the single source of truth for marker rendering.
type Photo struct {
	ID        string    `json:"id"`
	Owner     Owner     `json:"user"`
	Caption   string    `json:"caption"`
	Image     string    `json:"image"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// Identity is the viewer as reported by the server, fetched once per
// session and invalidated on logout.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
