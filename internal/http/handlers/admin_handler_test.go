package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/schoolsafe/go-report-backend/internal/services"
)

func TestUpdateReportStatus_Lifecycle(t *testing.T) {
	r, _, _ := newTestEnv(t)
	report := submitReport(t, r)
	statusPath := "/admin/reports/" + report.Report.CaseID + "/status"

	for _, target := range []string{"Under Review", "Action in Progress", "Resolved", "Closed"} {
		w := doJSON(t, r, http.MethodPut, statusPath, gin.H{"status": target}, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d (%s)", target, w.Code, w.Body.String())
		}
		var got map[string]any
		decode(t, w, &got)
		if got["status"] != target {
			t.Fatalf("expected %q, got %v", target, got["status"])
		}
	}

	// Reopening a closed case is allowed.
	w := doJSON(t, r, http.MethodPut, statusPath, gin.H{"status": "Submitted"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reopen: expected 200, got %d", w.Code)
	}

	// Unknown status and unknown case.
	w = doJSON(t, r, http.MethodPut, statusPath, gin.H{"status": "Escalated"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status: expected 400, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPut, "/admin/reports/ESC-2025-ZZZZ/status", gin.H{"status": "Resolved"}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown case: expected 404, got %d", w.Code)
	}
}

func TestListReports_FiltersAndPagination(t *testing.T) {
	r, _, _ := newTestEnv(t)

	categories := []string{"Bullying", "Bullying", "Safety"}
	for i, cat := range categories {
		w := doJSON(t, r, http.MethodPost, "/reports", gin.H{
			"category":    cat,
			"school_name": "Lincoln High",
			"details":     fmt.Sprintf("incident number %d with enough detail", i),
		}, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed %d: %d", i, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/admin/reports?category=Bullying", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d (%s)", w.Code, w.Body.String())
	}
	var resp ListReportsResponse
	decode(t, w, &resp)
	if resp.Pagination.Total != 2 || len(resp.Reports) != 2 {
		t.Fatalf("expected 2 bullying reports, got %+v", resp.Pagination)
	}

	// page_size=2 over 3 reports yields 2 pages.
	w = doJSON(t, r, http.MethodGet, "/admin/reports?page_size=2", nil, nil)
	decode(t, w, &resp)
	if resp.Pagination.TotalPages != 2 || !resp.Pagination.HasNext {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	w = doJSON(t, r, http.MethodGet, "/admin/reports?page=2&page_size=2", nil, nil)
	decode(t, w, &resp)
	if len(resp.Reports) != 1 || resp.Pagination.HasNext {
		t.Fatalf("unexpected last page: %+v", resp.Pagination)
	}

	// Bad filter values are rejected, not silently ignored.
	for _, q := range []string{"status=Escalated", "category=Gossip"} {
		w = doJSON(t, r, http.MethodGet, "/admin/reports?"+q, nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestDashboardStats(t *testing.T) {
	r, _, _ := newTestEnv(t)

	first := submitReport(t, r)
	_ = submitReport(t, r)

	w := doJSON(t, r, http.MethodPut, "/admin/reports/"+first.Report.CaseID+"/status",
		gin.H{"status": "Resolved"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("set status: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/admin/dashboard-stats", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: %d", w.Code)
	}
	var stats services.DashboardStats
	decode(t, w, &stats)
	if stats.Total != 2 || stats.Open != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.ByStatus["Resolved"] != 1 || stats.ByStatus["Submitted"] != 1 {
		t.Fatalf("unexpected by_status: %+v", stats.ByStatus)
	}
	if stats.ByCategory["Bullying"] != 2 {
		t.Fatalf("unexpected by_category: %+v", stats.ByCategory)
	}
}

func TestDeleteReport_Cascades(t *testing.T) {
	r, _, _ := newTestEnv(t)
	report := submitReport(t, r)
	casePath := "/admin/reports/" + report.Report.CaseID

	// Give the report a thread so the cascade has something to remove.
	w := doJSON(t, r, http.MethodPost, "/reports/chat/"+report.Report.CaseID,
		gin.H{"message": "please look into this"}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed message: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, casePath, nil, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d (%s)", w.Code, w.Body.String())
	}

	// Gone from every surface.
	if w = doJSON(t, r, http.MethodGet, "/reports/track/"+report.Report.CaseID, nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("track after delete: expected 404, got %d", w.Code)
	}
	if w = doJSON(t, r, http.MethodGet, "/reports/chat/"+report.Report.CaseID, nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("thread after delete: expected 404, got %d", w.Code)
	}
	if w = doJSON(t, r, http.MethodDelete, casePath, nil, nil); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}
