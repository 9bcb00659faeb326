package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, userID, mediaID int64) error {
	query := `INSERT INTO likes (user_id, media_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, userID, mediaID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("лайк уже поставлен: %w", ErrAlreadyExists)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("пост с ID %d: %w", mediaID, ErrNotFound)
		}
		return fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	return nil
}

// Delete removes only the caller's own edge; zero affected rows
// means the edge never existed.
func (r *likeRepository) Delete(ctx context.Context, userID, mediaID int64) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND media_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, mediaID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("лайк не найден: %w", ErrNotFound)
	}

	return nil
}
