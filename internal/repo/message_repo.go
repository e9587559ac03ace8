// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ReportMessage model. Messages are append-only; there is no update or
// single-row delete.
package repo

import (
	"time"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
)

// CreateReportMessage appends a message to a report's thread. The sender tag
// is whatever the service passed in; the repository never sees client input
// for it. The auto-increment ID provides the insertion-sequence tiebreaker
// for same-timestamp appends.
func CreateReportMessage(db *gorm.DB, reportID string, sender domain.SenderType, text string) (*domain.ReportMessage, error) {
	m := &domain.ReportMessage{
		ReportID:   reportID,
		SenderType: sender,
		Message:    text,
		CreatedAt:  time.Now().UTC(),
	}
	return m, db.Create(m).Error
}

// ListReportMessages returns a thread ordered deterministically
// (CreatedAt ASC, ID ASC). A limit <= 0 returns the full thread.
func ListReportMessages(db *gorm.DB, reportID string, limit int) ([]domain.ReportMessage, error) {
	var out []domain.ReportMessage
	q := db.Where("report_id = ?", reportID).Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// CountReportMessages uses a raw COUNT so a missing table surfaces as an error.
func CountReportMessages(db *gorm.DB, reportID string) (int64, error) {
	var total int64
	err := db.Raw("SELECT COUNT(*) FROM report_messages WHERE report_id = ?", reportID).Scan(&total).Error
	return total, err
}
