package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cloudpix/internal/models"
)

type mediaRepository struct {
	db *sqlx.DB
}

type CreateMediaRequest struct {
	Title    string  `json:"title"`
	Caption  *string `json:"caption"`
	Location *string `json:"location"`
	People   *string `json:"people"`
}

type UpdateMediaRequest struct {
	MediaID int64   `json:"mediaId"`
	Title   string  `json:"title"`
	Caption *string `json:"caption"`
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	query := `INSERT INTO media (title, caption, location, people, file_path, media_type, user_id) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING media_id, created_at`

	row := r.db.QueryRowxContext(ctx, query,
		media.Title,
		media.Caption,
		media.Location,
		media.People,
		media.FilePath,
		media.MediaType,
		media.UserID,
	)

	err := row.Scan(&media.MediaID, &media.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("пользователь с ID %d: %w", media.UserID, ErrNotFound)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, mediaID int64) (*models.Media, error) {
	var media models.Media

	query := `SELECT * FROM media WHERE media_id = $1`

	err := r.db.GetContext(ctx, &media, query, mediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", mediaID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &media, nil
}

// GetFeed returns all posts newest-first with per-row aggregates.
// Counts are computed by correlated subqueries at read time.
func (r *mediaRepository) GetFeed(ctx context.Context, callerID int64) ([]models.FeedItem, error) {
	query := `SELECT m.media_id, m.title, m.caption, m.file_path, m.created_at, m.user_id, u.username AS creator_username, (SELECT COUNT(*) FROM likes l WHERE l.media_id = m.media_id) AS like_count, (SELECT COUNT(*) FROM comments c WHERE c.media_id = m.media_id) AS comment_count, EXISTS (SELECT 1 FROM likes l WHERE l.media_id = m.media_id AND l.user_id = $1) AS user_has_liked, (SELECT c.text FROM comments c WHERE c.media_id = m.media_id ORDER BY c.created_at DESC LIMIT 1) AS latest_comment_text, (SELECT cu.username FROM comments c JOIN users cu ON c.user_id = cu.user_id WHERE c.media_id = m.media_id ORDER BY c.created_at DESC LIMIT 1) AS latest_comment_username FROM media m JOIN users u ON m.user_id = u.user_id ORDER BY m.created_at DESC`

	items := []models.FeedItem{}
	err := r.db.SelectContext(ctx, &items, query, callerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты: %w", err)
	}

	return items, nil
}

func (r *mediaRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Media, error) {
	query := `SELECT * FROM media WHERE user_id = $1 ORDER BY created_at DESC`

	posts := []models.Media{}
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов пользователя: %w", err)
	}

	return posts, nil
}

// UpdateOwned overwrites title/caption in a single conditional statement,
// so the ownership check and the mutation cannot race. A second read is
// made only to tell "not found" from "not the owner".
func (r *mediaRepository) UpdateOwned(ctx context.Context, mediaID, userID int64, title string, caption *string) error {
	query := `UPDATE media SET title = $1, caption = $2 WHERE media_id = $3 AND user_id = $4`

	result, err := r.db.ExecContext(ctx, query, title, caption, mediaID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return r.classifyOwnershipFailure(ctx, mediaID)
	}

	return nil
}

func (r *mediaRepository) DeleteOwned(ctx context.Context, mediaID, userID int64) error {
	query := `DELETE FROM media WHERE media_id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, mediaID, userID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return r.classifyOwnershipFailure(ctx, mediaID)
	}

	return nil
}

func (r *mediaRepository) classifyOwnershipFailure(ctx context.Context, mediaID int64) error {
	var ownerID int64

	query := `SELECT user_id FROM media WHERE media_id = $1`

	err := r.db.GetContext(ctx, &ownerID, query, mediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("пост с ID %d: %w", mediaID, ErrNotFound)
		}
		return fmt.Errorf("ошибка при проверке владельца поста: %w", err)
	}

	return fmt.Errorf("пост с ID %d принадлежит другому пользователю: %w", mediaID, ErrForbidden)
}
