// Message thread HTTP handlers.
//
// This file exposes REST endpoints for the two-way thread attached to each
// report:
//   - GET  /reports/chat/{case_id}           (full thread, chronological)
//   - POST /reports/chat/{case_id}           (reporter message)
//   - POST /admin/reports/{case_id}/messages (authority message)
//
// The sender side is decided by the route, never by the payload: the public
// DTO carries only the message text, so a client cannot forge an authority
// message by naming a sender_type field. The admin route sits behind the
// authority gate middleware.
package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/services"
)

//
// DTOs
//

// PostThreadMessageRequest is the JSON payload for appending a thread message.
//
// Message is normalized by the handler (line endings and excessive blank
// lines) before being passed to the service layer. The service also enforces
// a maximum rune count, configurable on ThreadService.
type PostThreadMessageRequest struct {
	// Message is the text to append. It must be non-empty after trimming.
	Message string `json:"message" binding:"required,min=1" example:"Is there any update on my report?"`
}

// ThreadMessageResponse is the JSON envelope for a newly appended message.
type ThreadMessageResponse struct {
	Message *domain.ReportMessage `json:"message"`
}

// ThreadResponse contains the full message thread of a report.
type ThreadResponse struct {
	CaseID   string                 `json:"case_id"`
	Messages []domain.ReportMessage `json:"messages"`
}

//
// Helpers
//

// nlCollapseRE collapses runs of 3+ newlines to two, preserving paragraphs.
var nlCollapseRE = regexp.MustCompile(`\n{3,}`)

// sanitizeMessage normalizes user text for consistent downstream behavior:
//   - converts CRLF/CR to LF,
//   - collapses runs of 3+ LFs to exactly two (paragraph separation),
//   - trims surrounding whitespace.
func sanitizeMessage(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = nlCollapseRE.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// discoverMaxMessageRunes inspects the concrete ThreadService for a
// configured message-length limit. If unavailable, it returns a conservative
// fallback.
func discoverMaxMessageRunes(threadSvc ThreadService) int {
	const fallback = 4000
	if ts, ok := threadSvc.(*services.ThreadService); ok {
		if ts.MaxMessageRunes > 0 {
			return ts.MaxMessageRunes
		}
	}
	return fallback
}

// appendMessage is the shared body of the reporter and authority append
// endpoints. The sender comes from the calling route.
func (h *Handlers) appendMessage(c *gin.Context, sender domain.SenderType) {
	var req PostThreadMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message required")
		return
	}
	text := sanitizeMessage(req.Message)

	m, err := h.threadSvc.Append(c.Request.Context(), caseIDParam(c), sender, text)
	if err != nil {
		switch err {
		case services.ErrReportNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		case services.ErrEmptyMessage:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "message required")
		case services.ErrTooLong:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest,
				fmt.Sprintf("message too long: max %d runes", discoverMaxMessageRunes(h.threadSvc)))
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, ThreadMessageResponse{Message: m})
}

//
// Handlers
//

// GetThread godoc
// @ID          getThread
// @Summary     Read the message thread of a report
// @Description Returns every message in the report's thread, oldest first.
// @Description Supports weak ETag via If-None-Match and may return 304.
// @Tags        Thread
// @Produce     json
//
// @Param       case_id        path    string  true  "Case ID"  example(ESC-2025-7F3A)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"abc123\")
//
// @Success     200  {object} handlers.ThreadResponse
// @Header      200  {string} ETag  "Weak ETag for current thread"
// @Success     304  {string} string "Not Modified"
// @Failure     404  {object} handlers.ErrorResponse "Report not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reports/chat/{case_id} [get]
func (h *Handlers) GetThread(c *gin.Context) {
	ctx := c.Request.Context()
	caseID := caseIDParam(c)

	// ETag pre-check (best effort): count and latest timestamp uniquely
	// describe an append-only thread.
	if count, maxTS, err := h.threadSvc.Stats(ctx, caseID); err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.Unix()
		}
		etag := fmt.Sprintf(`W/"thread:%s:%d:%d"`, caseID, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	msgs, err := h.threadSvc.List(ctx, caseID)
	if err != nil {
		switch err {
		case services.ErrReportNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ThreadResponse{CaseID: caseID, Messages: msgs})
}

// PostReporterMessage godoc
// @ID          postReporterMessage
// @Summary     Append a reporter message to a thread
// @Description Adds a message on the reporter side of the thread. The sender
// @Description is fixed by this route; the payload carries text only.
// @Tags        Thread
// @Accept      json
// @Produce     json
//
// @Param       case_id  path  string  true  "Case ID"  example(ESC-2025-7F3A)
// @Param       body     body  handlers.PostThreadMessageRequest  true  "Message payload"
//
// @Success     201  {object} handlers.ThreadMessageResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Report not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /reports/chat/{case_id} [post]
func (h *Handlers) PostReporterMessage(c *gin.Context) {
	h.appendMessage(c, domain.SenderUser)
}

// PostAuthorityMessage godoc
// @ID          postAuthorityMessage
// @Summary     Append an authority message to a thread
// @Description Adds a message on the school-authority side of the thread.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       case_id  path  string  true  "Case ID"  example(ESC-2025-7F3A)
// @Param       body     body  handlers.PostThreadMessageRequest  true  "Message payload"
//
// @Success     201  {object} handlers.ThreadMessageResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     404  {object} handlers.ErrorResponse "Report not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/reports/{case_id}/messages [post]
func (h *Handlers) PostAuthorityMessage(c *gin.Context) {
	h.appendMessage(c, domain.SenderAuthority)
}
