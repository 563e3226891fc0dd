// Package api defines the client-side interface to the herejpg server and
// its HTTP implementation.
package api

import (
	"context"

	"github.com/daynu/herejpg/internal/client/models"
)

// Client is the surface the map client needs from the server. The session
// credential is a cookie managed by the implementation; callers never
// handle tokens directly.
type Client interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.Identity, error)
	ListPhotos(ctx context.Context) ([]models.Photo, error)
	CreatePhoto(ctx context.Context, caption, image string, lat, lng float64) (*models.Photo, error)
	UpdatePhoto(ctx context.Context, id, caption, image string) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id string) error
}
