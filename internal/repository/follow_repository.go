package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cloudpix/internal/models"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followerID, followingID int64) error {
	query := `INSERT INTO followers (follower_id, following_id) VALUES ($1, $2)`

	_, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("подписка уже существует: %w", ErrAlreadyExists)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("пользователь с ID %d: %w", followingID, ErrNotFound)
		}
		return fmt.Errorf("ошибка при добавлении подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID int64) error {
	query := `DELETE FROM followers WHERE follower_id = $1 AND following_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("подписка не найдена: %w", ErrNotFound)
	}

	return nil
}

// GetSuggestions returns up to limit users the caller does not follow yet,
// excluding the caller. Order is not guaranteed.
func (r *followRepository) GetSuggestions(ctx context.Context, userID int64, limit int) ([]models.Suggestion, error) {
	query := `SELECT user_id, username FROM users WHERE user_id != $1 AND user_id NOT IN (SELECT following_id FROM followers WHERE follower_id = $1) LIMIT $2`

	suggestions := []models.Suggestion{}
	err := r.db.SelectContext(ctx, &suggestions, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении рекомендаций: %w", err)
	}

	return suggestions, nil
}
