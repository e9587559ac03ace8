// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Evidence
// model. Evidence rows are append-only: there is no update function.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
)

// CreateEvidence inserts an evidence row linking a stored blob to a report.
// Pass a transaction handle when the row must commit atomically with its
// parent report.
func CreateEvidence(db *gorm.DB, reportID, fileURI, fileName string, sizeBytes int64) (*domain.Evidence, error) {
	e := &domain.Evidence{
		ReportID:   reportID,
		FileURI:    fileURI,
		FileName:   fileName,
		SizeBytes:  sizeBytes,
		UploadedAt: time.Now().UTC(),
	}
	return e, db.Create(e).Error
}

// ListEvidence returns the evidence rows for a report in upload order
// (UploadedAt ASC, ID ASC).
func ListEvidence(ctx context.Context, db *gorm.DB, reportID string) ([]domain.Evidence, error) {
	var out []domain.Evidence
	err := db.WithContext(ctx).
		Where("report_id = ?", reportID).
		Order("uploaded_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// CountEvidence returns the number of evidence rows scoped to a report.
func CountEvidence(ctx context.Context, db *gorm.DB, reportID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Evidence{}).
		Where("report_id = ?", reportID).
		Count(&total).Error
	return total, err
}
