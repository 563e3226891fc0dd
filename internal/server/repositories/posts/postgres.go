package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daynu/herejpg/internal/common"
	"github.com/daynu/herejpg/internal/dbx"
	"github.com/daynu/herejpg/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (id, owner_id, caption, image, lat, lng)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Owner.ID, post.Caption, post.Image,
		post.Location.Lat, post.Location.Lng).Scan(&post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// ListAll returns all posts whose owner still resolves, each with the
// owner's public fields populated. The result order is the store's return
// order; an empty slice is not an error.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	query :=
		`SELECT p.id, p.caption, p.image, p.lat, p.lng, p.created_at, u.id, u.name
		 FROM posts p
		 JOIN users u ON u.id = p.owner_id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Post, 0)
	for rows.Next() {
		post := &models.Post{}
		err := rows.Scan(&post.ID, &post.Caption, &post.Image,
			&post.Location.Lat, &post.Location.Lng, &post.CreatedAt,
			&post.Owner.ID, &post.Owner.Name)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query :=
		`SELECT p.id, p.caption, p.image, p.lat, p.lng, p.created_at, u.id, u.name
		 FROM posts p
		 JOIN users u ON u.id = p.owner_id
		 WHERE p.id = $1
		 `

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Caption, &post.Image,
		&post.Location.Lat, &post.Location.Lng, &post.CreatedAt,
		&post.Owner.ID, &post.Owner.Name)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

// Update replaces caption and image only; owner, location and creation time
// are immutable.
func (r *PostgresRepository) Update(ctx context.Context, id, caption, image string) (*models.Post, error) {
	query :=
		`UPDATE posts SET caption = $2, image = $3
		 WHERE id = $1
		 RETURNING id
		 `

	var updatedID string
	err := r.db.QueryRowContext(ctx, query, id, caption, image).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM posts WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
