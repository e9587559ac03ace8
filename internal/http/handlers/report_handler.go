// Report HTTP handlers.
//
// This file exposes the public REST endpoints for incident reports:
//   - POST /reports                 (submit, JSON or multipart with evidence)
//   - GET  /reports/track/{case_id} (anonymous tracking via case id)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. The case id returned by submit is
// the reporter's only credential; no account or session exists anywhere on the
// public surface.
//
// Idempotency:
// If the client supplies an Idempotency-Key header and a previous successful
// submission exists for that key, the handler returns the recorded report and
// sets `Idempotency-Replayed: true` instead of minting a duplicate.
package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/http/middleware"
	"github.com/schoolsafe/go-report-backend/internal/repo"
	"github.com/schoolsafe/go-report-backend/internal/services"
	"github.com/schoolsafe/go-report-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// ReportService defines report lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ReportService interface {
	// Create validates and persists a submission, returning the stored report
	// with its freshly minted case id and the recorded evidence rows.
	Create(ctx context.Context, in services.CreateReportInput) (*domain.Report, []domain.Evidence, error)
	// Track fetches a report and its evidence by case id.
	Track(ctx context.Context, caseID string) (*domain.Report, []domain.Evidence, error)
	// SetStatus transitions the report identified by caseID to status.
	SetStatus(ctx context.Context, caseID, status string) (*domain.Report, error)
	// Delete removes a report with its thread, evidence rows, and blobs.
	Delete(ctx context.Context, caseID string) error
	// ListPage returns a filtered page of reports and the total count.
	ListPage(ctx context.Context, f repo.ReportFilter, page, pageSize int) ([]domain.Report, int64, error)
	// Stats aggregates report counts for the dashboard.
	Stats(ctx context.Context) (*services.DashboardStats, error)
}

// ThreadService defines message-thread operations consumed by HTTP handlers.
//
// The sender is always supplied by the route handler, never by the client:
// the public chat endpoint hard-codes the reporter side, the authority
// endpoint the school side.
type ThreadService interface {
	// Append adds one message to the thread of the report behind caseID.
	Append(ctx context.Context, caseID string, sender domain.SenderType, text string) (*domain.ReportMessage, error)
	// List returns the full thread in chronological order.
	List(ctx context.Context, caseID string) ([]domain.ReportMessage, error)
	// Stats returns the message count and latest timestamp for ETag checks.
	Stats(ctx context.Context, caseID string) (int64, *time.Time, error)
}

// ForumService defines community forum operations consumed by HTTP handlers.
type ForumService interface {
	CreatePost(ctx context.Context, title, body string) (*domain.ForumPost, error)
	ListPosts(ctx context.Context) ([]repo.ForumPostListItem, error)
	GetPost(ctx context.Context, id uint) (*domain.ForumPost, []domain.ForumReply, error)
	Reply(ctx context.Context, postID uint, body string) (*domain.ForumReply, error)
}

// ResourceService defines support-directory operations consumed by HTTP
// handlers. Search is keyword-based over name, category, and description.
type ResourceService interface {
	List(ctx context.Context) ([]domain.Resource, error)
	Get(ctx context.Context, id uint) (*domain.Resource, error)
	Search(ctx context.Context, query string) ([]domain.Resource, error)
	Create(ctx context.Context, r *domain.Resource) error
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, id uint) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for reports, threads, the forum, and the
// resource directory. It depends on abstract service interfaces to keep
// transport concerns separate from business logic.
type Handlers struct {
	reportSvc ReportService
	threadSvc ThreadService
	forumSvc  ForumService
	resSvc    ResourceService

	// IdempotencyTTL bounds how long a stored submission can be replayed.
	// Zero means the 24h default.
	IdempotencyTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
func New(reportSvc ReportService, threadSvc ThreadService, forumSvc ForumService, resSvc ResourceService) *Handlers {
	return &Handlers{reportSvc: reportSvc, threadSvc: threadSvc, forumSvc: forumSvc, resSvc: resSvc}
}

//
// DTOs
//

// SubmitReportRequest is the JSON payload for submitting a report.
//
// The same field names double as multipart form keys, with evidence files
// under the `evidence_files` part. Reporter identity is optional: anonymous
// submissions are first-class.
type SubmitReportRequest struct {
	// Category is one of the fixed incident categories.
	Category string `json:"category" form:"category" binding:"required" example:"Bullying"`
	// SchoolName identifies the school the incident happened at.
	SchoolName string `json:"school_name" form:"school_name" binding:"required" example:"Lincoln High"`
	// Details is the free-text incident description.
	Details string `json:"details" form:"details" binding:"required" example:"A teacher was shouting at a child during gym class."`
	// ReporterName optionally identifies the reporter.
	ReporterName *string `json:"reporter_name,omitempty" form:"reporter_name" example:"Jane Doe"`
	// ReporterEmail optionally provides a contact address.
	ReporterEmail *string `json:"reporter_email,omitempty" form:"reporter_email" example:"jane@example.com"`
}

// ReportResponse wraps a report and its evidence rows. The surrogate DB id is
// never serialized; the case id is the report's public identity.
type ReportResponse struct {
	Report   *domain.Report    `json:"report"`
	Evidence []domain.Evidence `json:"evidence"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// caseIDParam normalizes the :case_id route parameter. Shape validation is
// left to the service so malformed ids and unknown ids are indistinguishable
// at the HTTP surface (both map to 404).
func caseIDParam(c *gin.Context) string {
	return services.NormalizeCaseID(c.Param("case_id"))
}

// reportDB extracts the GORM handle from a concrete ReportService for
// best-effort side lookups (idempotency records). Returns nil for fakes.
func (h *Handlers) reportDB() *gorm.DB {
	if svc, ok := h.reportSvc.(*services.ReportService); ok {
		return svc.DB
	}
	return nil
}

// evidenceUploads converts multipart file headers into service upload specs.
// The returned closers must be closed by the caller after Create returns.
func evidenceUploads(files []*multipart.FileHeader) ([]services.EvidenceUpload, []multipart.File, error) {
	uploads := make([]services.EvidenceUpload, 0, len(files))
	open := make([]multipart.File, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			for _, o := range open {
				_ = o.Close()
			}
			return nil, nil, err
		}
		open = append(open, f)
		uploads = append(uploads, services.EvidenceUpload{
			FileName: fh.Filename,
			Size:     fh.Size,
			Content:  f,
		})
	}
	return uploads, open, nil
}

//
// Handlers
//

// SubmitReport godoc
// @ID          submitReport
// @Summary     Submit an incident report
// @Description Creates a report and returns it with a freshly generated case id.
// @Description Accepts JSON, or multipart/form-data with evidence files under `evidence_files`.
// @Description Supports idempotency via the Idempotency-Key header (same key → same report).
// @Tags        Reports
// @Accept      json
// @Accept      mpfd
// @Produce     json
//
// @Param       Idempotency-Key  header    string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body      handlers.SubmitReportRequest  true  "Report payload"
// @Param       evidence_files   formData  file    false "Evidence attachments (multipart only, repeatable)"
//
// @Success     201  {object}  handlers.ReportResponse  "Created report"
// @Failure     400  {object}  handlers.ErrorResponse   "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse   "Internal error"
// @Router      /reports [post]
func (h *Handlers) SubmitReport(c *gin.Context) {
	ctx := c.Request.Context()

	// Idempotency (replay path): a validated key that maps to a stored
	// submission short-circuits before any parsing of the new payload.
	idemKey, _ := middleware.GetIdempotencyKey(c)
	if idemKey != "" {
		if db := h.reportDB(); db != nil {
			if rec, err := repo.GetSubmission(ctx, db, idemKey, time.Now().UTC()); err == nil && rec != nil {
				if prev, err2 := repo.GetReportByID(ctx, db, rec.ReportID); err2 == nil {
					ev, _ := repo.ListEvidence(ctx, db, prev.ID)
					c.Header("Idempotency-Replayed", "true")
					ok(c, rec.Status, ReportResponse{Report: prev, Evidence: ev})
					return
				}
			}
		}
	}

	var req SubmitReportRequest
	var uploads []services.EvidenceUpload

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category, school_name and details are required")
			return
		}
		if form, err := c.MultipartForm(); err == nil && form != nil {
			ups, open, err := evidenceUploads(form.File["evidence_files"])
			if err != nil {
				fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unreadable evidence file")
				return
			}
			defer func() {
				for _, f := range open {
					_ = f.Close()
				}
			}()
			uploads = ups
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category, school_name and details are required")
			return
		}
	}

	report, evidence, err := h.reportSvc.Create(ctx, services.CreateReportInput{
		Category:      req.Category,
		SchoolName:    req.SchoolName,
		Details:       req.Details,
		ReporterName:  req.ReporterName,
		ReporterEmail: req.ReporterEmail,
		Evidence:      uploads,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidCategory:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown report category")
		case services.ErrMissingSchoolName:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "school_name required")
		case services.ErrMissingDetails:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "details required")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeSubmitFailed, err.Error())
		}
		return
	}

	// Idempotency (store path), best effort.
	if idemKey != "" {
		if db := h.reportDB(); db != nil {
			ttl := h.IdempotencyTTL
			if ttl <= 0 {
				ttl = 24 * time.Hour
			}
			_, _ = repo.CreateSubmission(ctx, db, idemKey, report.ID, http.StatusCreated, ttl)
		}
	}

	ok(c, http.StatusCreated, ReportResponse{Report: report, Evidence: evidence})
}

// TrackReport godoc
// @ID          trackReport
// @Summary     Track a report by case id
// @Description Returns the report and its evidence for the given case id.
// @Description Malformed and unknown case ids are indistinguishable (both 404).
// @Tags        Reports
// @Produce     json
//
// @Param       case_id  path  string  true  "Case ID"  example(ESC-2025-7F3A)
//
// @Success     200  {object}  handlers.ReportResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Report not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /reports/track/{case_id} [get]
func (h *Handlers) TrackReport(c *gin.Context) {
	report, evidence, err := h.reportSvc.Track(c.Request.Context(), caseIDParam(c))
	if err != nil {
		switch err {
		case services.ErrReportNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, ReportResponse{Report: report, Evidence: evidence})
}
