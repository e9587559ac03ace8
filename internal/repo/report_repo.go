// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Report model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a report is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - A case-id collision on insert surfaces as a unique-constraint error;
//     IsUniqueViolation recognizes it so the service layer can regenerate.
//   - On other DB errors the raw gorm error is propagated.
//
// This repository is wrapped by services.ReportService, which enforces
// validation, the case-id retry loop, and transactional submit semantics.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// IsUniqueViolation reports whether err is a unique-constraint failure.
// glebarez/sqlite often returns plain-text errors for UNIQUE violations, so
// the check falls back to message matching.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique")
}

// CreateReport inserts r, assigning the surrogate UUID and UTC creation time
// when unset. The caller owns case-id assignment; a collision surfaces as a
// unique-constraint error (see IsUniqueViolation).
func CreateReport(ctx context.Context, db *gorm.DB, r *domain.Report) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(r).Error
}

// GetReportByCaseID fetches a report by exact case-id match. The query is a
// single indexed equality: no LIKE, no prefix scan, nothing a caller could
// use to enumerate neighbouring case ids. Returns ErrNotFound when missing.
func GetReportByCaseID(ctx context.Context, db *gorm.DB, caseID string) (*domain.Report, error) {
	var r domain.Report
	err := db.WithContext(ctx).
		Where("case_id = ?", caseID).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetReportByID fetches a report by its surrogate UUID. Used when replaying
// an idempotent submission, where only the stored report id is known.
// Returns ErrNotFound when missing.
func GetReportByID(ctx context.Context, db *gorm.DB, id string) (*domain.Report, error) {
	var r domain.Report
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReportStatus sets the status of the report identified by caseID and
// refreshes updated_at. Returns ErrNotFound when no row matches.
func UpdateReportStatus(ctx context.Context, db *gorm.DB, caseID string, status domain.ReportStatus) error {
	res := db.WithContext(ctx).
		Model(&domain.Report{}).
		Where("case_id = ?", caseID).
		Updates(map[string]any{"status": status, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReportFilter narrows admin listings. Zero values mean "no filter".
type ReportFilter struct {
	Status   domain.ReportStatus
	Category domain.ReportCategory
}

func (f ReportFilter) apply(q *gorm.DB) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	return q
}

// CountReports returns the number of reports matching the filter.
func CountReports(ctx context.Context, db *gorm.DB, f ReportFilter) (int64, error) {
	var total int64
	err := f.apply(db.WithContext(ctx).Model(&domain.Report{})).Count(&total).Error
	return total, err
}

// ListReportsPage returns a paginated slice of reports matching the filter,
// newest first. Use CountReports to obtain the total for pagination metadata.
func ListReportsPage(ctx context.Context, db *gorm.DB, f ReportFilter, offset, limit int) ([]domain.Report, error) {
	var out []domain.Report
	err := f.apply(db.WithContext(ctx)).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteReport removes the report row and its children (messages, evidence)
// inside the supplied handle, children first so the delete succeeds even when
// foreign_keys enforcement is off. Callers wrap this in a transaction.
func DeleteReport(ctx context.Context, db *gorm.DB, reportID string) error {
	h := db.WithContext(ctx)
	if err := h.Where("report_id = ?", reportID).Delete(&domain.ReportMessage{}).Error; err != nil {
		return err
	}
	if err := h.Where("report_id = ?", reportID).Delete(&domain.Evidence{}).Error; err != nil {
		return err
	}
	res := h.Where("id = ?", reportID).Delete(&domain.Report{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
