// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the Submission
// model used to implement safe-retry semantics for POST /reports.
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

// ErrDuplicate indicates that a submission record already exists for the
// given idempotency key.
var ErrDuplicate = errors.New("duplicate")

// GetSubmission returns a non-expired record or ErrNotFound.
func GetSubmission(ctx context.Context, db *gorm.DB, key string, now time.Time) (*domain.Submission, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	var rec domain.Submission
	err := db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &rec, err
}

// CreateSubmission inserts a record and returns ErrDuplicate on unique violation.
func CreateSubmission(ctx context.Context, db *gorm.DB, key, reportID string, status int, ttl time.Duration) (*domain.Submission, error) {
	now := time.Now().UTC()
	rec := &domain.Submission{
		ID:        uuid.NewString(),
		Key:       key,
		ReportID:  reportID,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}
