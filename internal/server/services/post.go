package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/daynu/herejpg/internal/authz"
	"github.com/daynu/herejpg/internal/common"
	"github.com/daynu/herejpg/internal/server/auth"
	"github.com/daynu/herejpg/internal/server/models"
	"github.com/daynu/herejpg/internal/server/repositories/posts"
	"github.com/google/uuid"
)

// PostService orchestrates post mutations: any authenticated user may
// create (becoming the owner); update and delete pass through the mutation
// policy against the existing post's owner. This check is the authoritative
// one — the client evaluates the same rule, but only for UI gating.
type PostService struct {
	posts posts.Repository
}

func NewPostService(repo posts.Repository) *PostService {
	return &PostService{posts: repo}
}

// Create stores a new post owned by the actor. Image is mandatory, caption
// may be empty. Coordinates were already parsed by the caller.
func (s *PostService) Create(ctx context.Context, actor *auth.Identity, caption, image string, lat, lng float64) (*models.Post, error) {
	if image == "" {
		return nil, common.ErrorValidation
	}

	post := &models.Post{
		ID:       uuid.NewString(),
		Owner:    models.Owner{ID: actor.UserID, Name: actor.Name},
		Caption:  caption,
		Image:    image,
		Location: models.Location{Lat: lat, Lng: lng},
	}

	p, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

// ListAll returns the public feed with owners populated. Posts whose owner
// no longer resolves are absent from the result.
func (s *PostService) ListAll(ctx context.Context) ([]*models.Post, error) {
	result, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return result, nil
}

// Update replaces the caption and image of an existing post. Fails with
// ErrorNotFound if the post is gone and ErrorForbidden if the policy denies
// the actor.
func (s *PostService) Update(ctx context.Context, actor *auth.Identity, id, caption, image string) (*models.Post, error) {
	if id == "" || image == "" {
		return nil, common.ErrorValidation
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error fetching post: %w", err)
	}

	if !authz.CanMutate(actor.UserID, actor.Role, post.Owner.ID) {
		return nil, common.ErrorForbidden
	}

	updated, err := s.posts.Update(ctx, id, caption, image)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return updated, nil
}

// Delete removes a post permanently. Same gate as Update; deleting an
// already-deleted id fails with ErrorNotFound every time.
func (s *PostService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	if id == "" {
		return common.ErrorValidation
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error fetching post: %w", err)
	}

	if !authz.CanMutate(actor.UserID, actor.Role, post.Owner.ID) {
		return common.ErrorForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}
