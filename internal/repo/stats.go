// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides aggregate/statistics queries used by
// the authority dashboard and by conditional responses (ETag generation) in
// the HTTP layer. Each function is context-aware and safe to call from
// services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
)

// statusCountRow scans one GROUP BY bucket.
type statusCountRow struct {
	Key   string
	Total int64
}

// CountReportsByStatus returns report counts grouped by status. Statuses with
// no reports are absent from the map.
func CountReportsByStatus(ctx context.Context, db *gorm.DB) (map[domain.ReportStatus]int64, error) {
	var rows []statusCountRow
	err := db.WithContext(ctx).
		Model(&domain.Report{}).
		Select("status AS key, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ReportStatus]int64, len(rows))
	for _, r := range rows {
		out[domain.ReportStatus(r.Key)] = r.Total
	}
	return out, nil
}

// CountReportsByCategory returns report counts grouped by category.
func CountReportsByCategory(ctx context.Context, db *gorm.DB) (map[domain.ReportCategory]int64, error) {
	var rows []statusCountRow
	err := db.WithContext(ctx).
		Model(&domain.Report{}).
		Select("category AS key, COUNT(*) AS total").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[domain.ReportCategory]int64, len(rows))
	for _, r := range rows {
		out[domain.ReportCategory(r.Key)] = r.Total
	}
	return out, nil
}

// ThreadStats returns aggregate metadata for a report's message thread: the
// total number of rows and the maximum CreatedAt timestamp among those rows.
//
// It executes two lightweight queries against the report_messages table
// scoped to the provided reportID. When the thread is empty, the returned
// count is 0 and maxCreatedAt is nil.
//
// Return values:
//   - count:        total messages for reportID
//   - maxCreatedAt: pointer to the greatest CreatedAt, or nil if no rows
//   - err:          database error, if any
func ThreadStats(ctx context.Context, db *gorm.DB, reportID string) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.ReportMessage{}).Where("report_id = ?", reportID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
