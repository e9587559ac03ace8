// Community forum HTTP handlers.
//
// This file exposes the anonymous peer-support forum:
//   - GET  /forum            (posts, newest first, with reply counts)
//   - POST /forum            (create post)
//   - GET  /forum/{id}       (post with replies, oldest first)
//   - POST /forum/{id}/reply (append reply)
//
// The forum is intentionally account-free, like the reporting surface.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/repo"
	"github.com/schoolsafe/go-report-backend/internal/services"
)

//
// DTOs
//

// CreateForumPostRequest is the JSON payload for opening a forum thread.
type CreateForumPostRequest struct {
	// Title is the post headline (1-255 chars after whitespace folding).
	Title string `json:"title" binding:"required,min=1" example:"How to deal with exam stress"`
	// Body is the post text.
	Body string `json:"body" binding:"required,min=1" example:"Looking for advice before finals week."`
}

// CreateForumReplyRequest is the JSON payload for replying to a post.
type CreateForumReplyRequest struct {
	// Body is the reply text.
	Body string `json:"body" binding:"required,min=1" example:"Short walks between sessions helped me a lot."`
}

// ListForumResponse wraps the post listing with per-post reply counts.
type ListForumResponse struct {
	Posts []repo.ForumPostListItem `json:"posts"`
}

// ForumPostResponse is one post with its full reply thread.
type ForumPostResponse struct {
	Post       *domain.ForumPost   `json:"post"`
	Replies    []domain.ForumReply `json:"replies"`
	ReplyCount int                 `json:"reply_count"`
}

// forumPostID parses the :id route param. Returns (0, false) and writes a 400
// response when the id is not a positive integer.
func forumPostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "post id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

//
// Handlers
//

// ListForumPosts godoc
// @ID          listForumPosts
// @Summary     List forum posts
// @Description Returns all forum posts, newest first, each with its reply count.
// @Tags        Forum
// @Produce     json
//
// @Success     200  {object} handlers.ListForumResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /forum [get]
func (h *Handlers) ListForumPosts(c *gin.Context) {
	posts, err := h.forumSvc.ListPosts(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListForumResponse{Posts: posts})
}

// CreateForumPost godoc
// @ID          createForumPost
// @Summary     Open a forum thread
// @Description Creates an anonymous forum post and returns it.
// @Tags        Forum
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateForumPostRequest  true  "Post payload"
//
// @Success     201  {object} domain.ForumPost
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /forum [post]
func (h *Handlers) CreateForumPost(c *gin.Context) {
	var req CreateForumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title and body are required")
		return
	}

	post, err := h.forumSvc.CreatePost(c.Request.Context(), req.Title, req.Body)
	if err != nil {
		switch err {
		case services.ErrEmptyTitle, services.ErrEmptyBody:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "title and body are required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, post)
}

// GetForumPost godoc
// @ID          getForumPost
// @Summary     Read a forum thread
// @Description Returns a post with its replies in chronological order.
// @Tags        Forum
// @Produce     json
//
// @Param       id  path  int  true  "Post ID"  example(7)
//
// @Success     200  {object} handlers.ForumPostResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Post not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /forum/{id} [get]
func (h *Handlers) GetForumPost(c *gin.Context) {
	id, okID := forumPostID(c)
	if !okID {
		return
	}

	post, replies, err := h.forumSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ForumPostResponse{Post: post, Replies: replies, ReplyCount: len(replies)})
}

// CreateForumReply godoc
// @ID          createForumReply
// @Summary     Reply to a forum thread
// @Description Appends an anonymous reply to the given post.
// @Tags        Forum
// @Accept      json
// @Produce     json
//
// @Param       id    path  int  true  "Post ID"  example(7)
// @Param       body  body  handlers.CreateForumReplyRequest  true  "Reply payload"
//
// @Success     201  {object} domain.ForumReply
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Post not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /forum/{id}/reply [post]
func (h *Handlers) CreateForumReply(c *gin.Context) {
	id, okID := forumPostID(c)
	if !okID {
		return
	}

	var req CreateForumReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "body required")
		return
	}

	reply, err := h.forumSvc.Reply(c.Request.Context(), id, req.Body)
	if err != nil {
		switch err {
		case services.ErrPostNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "post not found")
		case services.ErrEmptyBody:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "body required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, reply)
}
