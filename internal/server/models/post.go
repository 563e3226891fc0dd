package models

import "time"

// Location is the fixed coordinate a post is pinned to. Immutable after
// create, like the owner reference.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Owner is the public subset of the owning user populated into list and
// single-post reads.
type Owner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is a geotagged photo post. Image is an opaque encoded blob (the
// client sends data URLs); the server never inspects it beyond requiring it
// to be non-empty.
type Post struct {
	ID        string    `json:"id"`
	Owner     Owner     `json:"user"`
	Caption   string    `json:"caption"`
	Image     string    `json:"image"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}
