package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cloudpix/internal/models"
)

type ratingRepository struct {
	db *sqlx.DB
}

func NewRatingRepository(db *sqlx.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert keeps exactly one rating per (media, user) pair:
// rating the same post again overwrites the previous value.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	query := `INSERT INTO ratings (value, media_id, user_id) VALUES ($1, $2, $3) ON CONFLICT (media_id, user_id) DO UPDATE SET value = EXCLUDED.value RETURNING rating_id, created_at`

	row := r.db.QueryRowxContext(ctx, query, rating.Value, rating.MediaID, rating.UserID)

	err := row.Scan(&rating.RatingID, &rating.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("пост с ID %d: %w", rating.MediaID, ErrNotFound)
		}
		return fmt.Errorf("ошибка при сохранении оценки: %w", err)
	}

	return nil
}
