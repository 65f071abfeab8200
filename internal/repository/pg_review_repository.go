package repository

import (
	"context"

	"github.com/homestay/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgReviewRepository is the PostgreSQL implementation of ReviewRepository.
type PgReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPgReviewRepository creates a PgReviewRepository backed by the given pool.
func NewPgReviewRepository(pool *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{pool: pool}
}

var _ ReviewRepository = (*PgReviewRepository)(nil)

// Save inserts a new reviews row and populates rev.ID and CreatedAt from
// the database RETURNING clause.
func (r *PgReviewRepository) Save(ctx context.Context, rev *model.Review) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO reviews (name, country, rating, message)
		 VALUES ($1, NULLIF($2, ''), $3, $4)
		 RETURNING id, created_at`,
		rev.Name, rev.Country, rev.Rating, rev.Message,
	).Scan(&rev.ID, &rev.CreatedAt)
}

// List returns reviews newest first, paginated by limit/offset.
func (r *PgReviewRepository) List(ctx context.Context, opts model.ReviewListOptions) ([]*model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, COALESCE(country, ''), rating, message, created_at
		 FROM reviews
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.Name, &rev.Country, &rev.Rating, &rev.Message, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rev)
	}
	return reviews, rows.Err()
}
