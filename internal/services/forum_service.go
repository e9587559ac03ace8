// Package services – ForumService
//
// This file implements the ForumService, which manages the anonymous
// community discussion board. It validates and normalizes post titles and
// bodies and coordinates repository operations for creating posts, listing
// them with reply counts, and appending replies.
//
// Service-level errors (e.g., ErrPostNotFound) are returned for predictable
// cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/repo"
)

// ForumService provides the discussion-board operations. Posts and replies
// are anonymous and append-only.
type ForumService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// TitleMaxLen caps stored post titles by rune length.
	TitleMaxLen int
}

// NewForumService constructs a ForumService with sane defaults.
func NewForumService(db *gorm.DB) *ForumService {
	return &ForumService{DB: db, TitleMaxLen: 255}
}

// CreatePost inserts a new post. Titles are normalized, trimmed, and clipped.
func (s *ForumService) CreatePost(ctx context.Context, title, body string) (*domain.ForumPost, error) {
	title = normalizeLine(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	return repo.CreateForumPost(ctx, s.DB, s.clip(title), strings.TrimSpace(body))
}

// ListPosts returns all posts, newest first, with reply counts.
func (s *ForumService) ListPosts(ctx context.Context) ([]repo.ForumPostListItem, error) {
	return repo.ListForumPosts(ctx, s.DB)
}

// GetPost returns one post with its replies in chronological order.
func (s *ForumService) GetPost(ctx context.Context, id uint) (*domain.ForumPost, []domain.ForumReply, error) {
	post, err := repo.GetForumPost(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}
	replies, err := repo.ListForumReplies(ctx, s.DB, id)
	if err != nil {
		return nil, nil, err
	}
	return post, replies, nil
}

// Reply appends a reply to an existing post.
func (s *ForumService) Reply(ctx context.Context, postID uint, body string) (*domain.ForumReply, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	// Ensure the post exists.
	if _, err := repo.GetForumPost(ctx, s.DB, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return repo.CreateForumReply(ctx, s.DB, postID, body)
}

// clip truncates a post title to the configured maximum rune length.
func (s *ForumService) clip(title string) string {
	if s.TitleMaxLen > 0 && utf8.RuneCountInString(title) > s.TitleMaxLen {
		return string([]rune(title)[:s.TitleMaxLen])
	}
	return title
}

// normalizeLine trims whitespace and collapses multiple spaces to one.
func normalizeLine(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// whitespaceRE collapses consecutive whitespace to a single space.
var whitespaceRE = regexp.MustCompile(`\s+`)
