package models

import (
	"time"
)

const (
	RoleCreator  = "creator"
	RoleConsumer = "consumer"
)

type User struct {
	UserID       int64  `json:"userId" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         string `json:"role" db:"role"`
}

type Media struct {
	MediaID   int64     `json:"mediaId" db:"media_id"`
	Title     string    `json:"title" db:"title"`
	Caption   *string   `json:"caption" db:"caption"`
	Location  *string   `json:"location" db:"location"`
	People    *string   `json:"people" db:"people"`
	FilePath  string    `json:"filePath" db:"file_path"`
	MediaType string    `json:"mediaType" db:"media_type"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	CommentID int64     `json:"commentId" db:"comment_id"`
	Text      string    `json:"text" db:"text"`
	MediaID   int64     `json:"mediaId" db:"media_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Rating struct {
	RatingID  int64     `json:"ratingId" db:"rating_id"`
	Value     int       `json:"value" db:"value"`
	MediaID   int64     `json:"mediaId" db:"media_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FeedItem is one row of the feed: a post plus its aggregates
// computed at read time.
type FeedItem struct {
	MediaID               int64     `json:"id" db:"media_id"`
	Title                 string    `json:"title" db:"title"`
	Caption               *string   `json:"caption" db:"caption"`
	FilePath              string    `json:"filePath" db:"file_path"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
	UserID                int64     `json:"userId" db:"user_id"`
	CreatorUsername       string    `json:"creatorUsername" db:"creator_username"`
	LikeCount             int       `json:"likeCount" db:"like_count"`
	CommentCount          int       `json:"commentCount" db:"comment_count"`
	UserHasLiked          bool      `json:"userHasLiked" db:"user_has_liked"`
	LatestCommentText     *string   `json:"latestCommentText" db:"latest_comment_text"`
	LatestCommentUsername *string   `json:"latestCommentUsername" db:"latest_comment_username"`
}

type CommentWithAuthor struct {
	CommentID int64     `json:"id" db:"comment_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
}

type Suggestion struct {
	UserID   int64  `json:"id" db:"user_id"`
	Username string `json:"username" db:"username"`
}
