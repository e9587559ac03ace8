// Package services – ThreadService
//
// This file implements ThreadService, which manages the message thread
// attached to a report. Both sides of the conversation go through Append;
// the sender attribution is an argument chosen by the calling route, never
// client input, which is what keeps the reporter/authority boundary intact.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ThreadService provides append and list operations over report threads.
type ThreadService struct {
	DB *gorm.DB

	// MaxMessageRunes caps message length; zero disables the guard.
	MaxMessageRunes int
	// ListLimit caps how many messages a single list call returns;
	// zero means no cap.
	ListLimit int
}

// NewThreadService constructs a ThreadService with sane defaults.
func NewThreadService(db *gorm.DB) *ThreadService {
	return &ThreadService{
		DB:              db,
		MaxMessageRunes: 4000,
		ListLimit:       500,
	}
}

// Append validates the text, resolves the case id, and persists one message
// attributed to sender. The sender value comes from the route handler, so a
// payload can never claim the wrong side of the thread.
func (s *ThreadService) Append(ctx context.Context, caseID string, sender domain.SenderType, text string) (*domain.ReportMessage, error) {
	tr := otel.Tracer("services/ThreadService")
	ctx, span := tr.Start(ctx, "Append",
		trace.WithAttributes(
			attribute.String("report.case_id", caseID),
			attribute.String("message.sender", string(sender)),
		),
	)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(text) > s.MaxMessageRunes {
		return nil, ErrTooLong
	}
	if !sender.Valid() {
		return nil, errors.New("unknown sender type")
	}

	caseID = NormalizeCaseID(caseID)
	if !domain.ValidCaseID(caseID) {
		return nil, ErrReportNotFound
	}
	report, err := repo.GetReportByCaseID(ctx, s.DB, caseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	var msg *domain.ReportMessage
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := repo.CreateReportMessage(tx, report.ID, sender, text)
		if err != nil {
			return err
		}
		msg = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns the full thread for a case id in creation order.
func (s *ThreadService) List(ctx context.Context, caseID string) ([]domain.ReportMessage, error) {
	tr := otel.Tracer("services/ThreadService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("report.case_id", caseID)),
	)
	defer span.End()

	caseID = NormalizeCaseID(caseID)
	if !domain.ValidCaseID(caseID) {
		return nil, ErrReportNotFound
	}
	report, err := repo.GetReportByCaseID(ctx, s.DB, caseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return repo.ListReportMessages(s.DB.WithContext(ctx), report.ID, s.ListLimit)
}

// Stats returns the message count and last-activity timestamp for a case id.
// Used by the authority console list view.
func (s *ThreadService) Stats(ctx context.Context, caseID string) (int64, *time.Time, error) {
	caseID = NormalizeCaseID(caseID)
	report, err := repo.GetReportByCaseID(ctx, s.DB, caseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, nil, ErrReportNotFound
		}
		return 0, nil, err
	}
	return repo.ThreadStats(ctx, s.DB, report.ID)
}
