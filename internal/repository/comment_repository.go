package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cloudpix/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `INSERT INTO comments (text, media_id, user_id) VALUES ($1, $2, $3) RETURNING comment_id, created_at`

	row := r.db.QueryRowxContext(ctx, query, comment.Text, comment.MediaID, comment.UserID)

	err := row.Scan(&comment.CommentID, &comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("пост с ID %d: %w", comment.MediaID, ErrNotFound)
		}
		return fmt.Errorf("ошибка при добавлении комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByMediaID(ctx context.Context, mediaID int64) ([]models.CommentWithAuthor, error) {
	// oldest-first, with the commenter handle
	query := `SELECT c.comment_id, c.text, c.created_at, u.username FROM comments c JOIN users u ON c.user_id = u.user_id WHERE c.media_id = $1 ORDER BY c.created_at ASC`

	comments := []models.CommentWithAuthor{}
	err := r.db.SelectContext(ctx, &comments, query, mediaID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
