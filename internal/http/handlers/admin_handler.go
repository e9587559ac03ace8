// Authority console HTTP handlers.
//
// This file exposes the school-authority REST endpoints, all mounted behind
// the authority gate middleware:
//   - GET    /admin/reports                  (filtered, paginated list)
//   - PUT    /admin/reports/{case_id}/status (lifecycle transition)
//   - DELETE /admin/reports/{case_id}        (cascade delete)
//   - GET    /admin/dashboard-stats          (counts by status and category)
//
// Status transitions are unrestricted within the fixed status set: the
// console may move a report backwards (e.g. reopening a closed case).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/repo"
	"github.com/schoolsafe/go-report-backend/internal/services"
)

//
// DTOs
//

// UpdateStatusRequest is the JSON payload for a status transition.
type UpdateStatusRequest struct {
	// Status is the target lifecycle status.
	Status string `json:"status" binding:"required" example:"Under Review"`
}

// ListReportsResponse wraps a page of reports and pagination information.
type ListReportsResponse struct {
	Reports    []domain.Report `json:"reports"`
	Pagination Pagination      `json:"pagination"`
}

//
// Handlers
//

// UpdateReportStatus godoc
// @ID          updateReportStatus
// @Summary     Change a report's lifecycle status
// @Description Transitions the report to the given status and returns the updated report.
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       case_id  path  string  true  "Case ID"  example(ESC-2025-7F3A)
// @Param       body     body  handlers.UpdateStatusRequest  true  "Target status"
//
// @Success     200  {object} domain.Report
// @Failure     400  {object} handlers.ErrorResponse "Unknown status"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     404  {object} handlers.ErrorResponse "Report not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/reports/{case_id}/status [put]
func (h *Handlers) UpdateReportStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status required")
		return
	}

	report, err := h.reportSvc.SetStatus(c.Request.Context(), caseIDParam(c), req.Status)
	if err != nil {
		switch err {
		case services.ErrInvalidStatus:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown report status")
		case services.ErrReportNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, report)
}

// ListReports godoc
// @ID          listReports
// @Summary     List reports (paginated)
// @Description Returns a page of reports, newest first, optionally filtered by
// @Description status and category. Unknown filter values yield 400.
// @Tags        Admin
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       status     query  string  false "Filter by status"    example(Under Review)
// @Param       category   query  string  false "Filter by category"  example(Bullying)
// @Param       page       query  int     false "Page number"         minimum(1) default(1)
// @Param       page_size  query  int     false "Items per page"      minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListReportsResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad filter value"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/reports [get]
func (h *Handlers) ListReports(c *gin.Context) {
	var f repo.ReportFilter
	if s := c.Query("status"); s != "" {
		st := domain.ReportStatus(s)
		if !st.Valid() {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown report status")
			return
		}
		f.Status = st
	}
	if s := c.Query("category"); s != "" {
		cat := domain.ReportCategory(s)
		if !cat.Valid() {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unknown report category")
			return
		}
		f.Category = cat
	}

	page, pageSize := clampPagination(c)
	items, total, err := h.reportSvc.ListPage(c.Request.Context(), f, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListReportsResponse{
		Reports: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// DashboardStats godoc
// @ID          dashboardStats
// @Summary     Dashboard statistics
// @Description Returns total, open, per-status, and per-category report counts.
// @Tags        Admin
// @Produce     json
// @Security    ApiKeyAuth
//
// @Success     200  {object} services.DashboardStats
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/dashboard-stats [get]
func (h *Handlers) DashboardStats(c *gin.Context) {
	stats, err := h.reportSvc.Stats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, stats)
}

// DeleteReport godoc
// @ID          deleteReport
// @Summary     Delete a report
// @Description Removes the report with its thread, evidence rows, and stored blobs.
// @Tags        Admin
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       case_id  path  string  true  "Case ID"  example(ESC-2025-7F3A)
//
// @Success     204  {string} string "No Content"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     404  {object} handlers.ErrorResponse "Report not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/reports/{case_id} [delete]
func (h *Handlers) DeleteReport(c *gin.Context) {
	if err := h.reportSvc.Delete(c.Request.Context(), caseIDParam(c)); err != nil {
		switch err {
		case services.ErrReportNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "report not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}
