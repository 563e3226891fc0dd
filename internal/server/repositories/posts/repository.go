package posts

import (
	"context"

	"github.com/daynu/herejpg/internal/server/models"
)

// Repository is the store gateway for posts. Reads populate the owner's
// public fields; posts whose owner no longer resolves are filtered out, not
// reported as errors.
type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	ListAll(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id, caption, image string) (*models.Post, error)
	Delete(ctx context.Context, id string) error
}
