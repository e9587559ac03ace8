// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the public
// forum (posts and their replies).
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
)

// ForumPostListItem is a post row augmented with its reply count, as shown
// in the forum overview.
type ForumPostListItem struct {
	domain.ForumPost
	ReplyCount int64 `json:"reply_count"`
}

// CreateForumPost inserts a new post.
func CreateForumPost(ctx context.Context, db *gorm.DB, title, body string) (*domain.ForumPost, error) {
	p := &domain.ForumPost{
		Title:     title,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// ListForumPosts returns all posts newest first, each with its reply count.
func ListForumPosts(ctx context.Context, db *gorm.DB) ([]ForumPostListItem, error) {
	var out []ForumPostListItem
	err := db.WithContext(ctx).
		Model(&domain.ForumPost{}).
		Select("forum_posts.*, (SELECT COUNT(*) FROM forum_replies WHERE forum_replies.post_id = forum_posts.id) AS reply_count").
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// GetForumPost fetches a single post or ErrNotFound.
func GetForumPost(ctx context.Context, db *gorm.DB, id uint) (*domain.ForumPost, error) {
	var p domain.ForumPost
	if err := db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListForumReplies returns a post's replies in chronological order.
func ListForumReplies(ctx context.Context, db *gorm.DB, postID uint) ([]domain.ForumReply, error) {
	var out []domain.ForumReply
	err := db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CreateForumReply appends a reply to a post. The caller ensures the post
// exists.
func CreateForumReply(ctx context.Context, db *gorm.DB, postID uint, body string) (*domain.ForumReply, error) {
	r := &domain.ForumReply{
		PostID:    postID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}
