// Package services – ReportService
//
// This file implements ReportService, the application-level component that
// owns the lifecycle of incident reports. It validates submissions, stores
// evidence bytes through the blob store, mints collision-checked case ids,
// and persists the report with its evidence rows atomically.
//
// The case id doubles as the reporter's access credential: lookups are
// exact-match only and a miss is indistinguishable from "never existed".
//
// Observability: the public methods are OpenTelemetry-instrumented; spans
// carry the case id and pagination parameters where applicable.
package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/schoolsafe/go-report-backend/internal/blob"
	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EvidenceUpload is one file attached to a submission. Content is streamed
// into the blob store; the service never buffers whole files.
type EvidenceUpload struct {
	FileName string
	Size     int64
	Content  io.Reader
}

// CreateReportInput carries a validated-at-the-edge submission payload.
// Reporter fields are optional: anonymous reports are first-class.
type CreateReportInput struct {
	Category      string
	SchoolName    string
	Details       string
	ReporterName  *string
	ReporterEmail *string
	Evidence      []EvidenceUpload
}

// DashboardStats aggregates report counts for the authority dashboard.
type DashboardStats struct {
	Total      int64                           `json:"total_reports"`
	Open       int64                           `json:"open_reports"`
	ByStatus   map[domain.ReportStatus]int64   `json:"by_status"`
	ByCategory map[domain.ReportCategory]int64 `json:"by_category"`
}

// ReportService coordinates report creation, tracking, lifecycle updates,
// and removal. It owns case id generation including the bounded retry on
// unique-index collisions.
type ReportService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Blobs stores evidence bytes and hands back opaque URIs.
	Blobs blob.Store

	// CasePrefix is the product prefix for generated case ids.
	CasePrefix string
	// MaxAttempts bounds case id regeneration on collisions.
	MaxAttempts int

	// SummaryMaxLen caps generated summaries by rune length.
	SummaryMaxLen int
	// SummaryLocale controls title casing of generated summaries.
	SummaryLocale language.Tag

	// NewCaseID generates candidate case ids; nil means domain.NewCaseID.
	NewCaseID func(prefix string, now time.Time) string
}

// NewReportService constructs a ReportService with sane defaults.
func NewReportService(db *gorm.DB, blobs blob.Store) *ReportService {
	return &ReportService{
		DB:            db,
		Blobs:         blobs,
		CasePrefix:    domain.DefaultCasePrefix,
		MaxAttempts:   5,
		SummaryMaxLen: 120,
		SummaryLocale: language.Und,
	}
}

// storedBlob is one evidence file already written to the blob store.
type storedBlob struct {
	uri  string
	name string
	size int64
}

// Create validates the submission, stores evidence bytes, and persists the
// report plus its evidence rows in one transaction. Case ids are regenerated
// on unique-index collisions up to MaxAttempts; exhaustion yields
// ErrCapacityExhausted and leaves no partial state behind.
func (s *ReportService) Create(ctx context.Context, in CreateReportInput) (*domain.Report, []domain.Evidence, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("report.category", in.Category)),
	)
	defer span.End()

	category := domain.ReportCategory(strings.TrimSpace(in.Category))
	if !category.Valid() {
		return nil, nil, ErrInvalidCategory
	}
	school := strings.TrimSpace(in.SchoolName)
	if school == "" {
		return nil, nil, ErrMissingSchoolName
	}
	details := strings.TrimSpace(in.Details)
	if details == "" {
		return nil, nil, ErrMissingDetails
	}

	// Blob writes happen before the transaction: the store is append-only and
	// orphans are cheap, half-written reports are not.
	stored, err := s.storeUploads(ctx, in.Evidence)
	if err != nil {
		return nil, nil, err
	}

	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = 5
	}
	newCaseID := s.NewCaseID
	if newCaseID == nil {
		newCaseID = domain.NewCaseID
	}

	for i := 0; i < attempts; i++ {
		report := &domain.Report{
			CaseID:        newCaseID(s.CasePrefix, time.Now().UTC()),
			Category:      category,
			SchoolName:    school,
			Details:       details,
			Summary:       s.generateSummary(details),
			ReporterName:  trimPtr(in.ReporterName),
			ReporterEmail: trimPtr(in.ReporterEmail),
			Status:        domain.StatusSubmitted,
		}

		var evidence []domain.Evidence
		err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := repo.CreateReport(ctx, tx, report); err != nil {
				return err
			}
			for _, b := range stored {
				ev, err := repo.CreateEvidence(tx, report.ID, b.uri, b.name, b.size)
				if err != nil {
					return err
				}
				evidence = append(evidence, *ev)
			}
			return nil
		})
		if err == nil {
			span.SetAttributes(attribute.String("report.case_id", report.CaseID))
			return report, evidence, nil
		}
		if repo.IsUniqueViolation(err) {
			continue
		}
		s.removeBlobs(ctx, stored)
		return nil, nil, err
	}

	s.removeBlobs(ctx, stored)
	return nil, nil, ErrCapacityExhausted
}

// Track returns the report and its evidence for a case id. Any failure mode
// maps to ErrReportNotFound so possession of a valid-shaped id stays the only
// way to distinguish existing reports.
func (s *ReportService) Track(ctx context.Context, caseID string) (*domain.Report, []domain.Evidence, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "Track",
		trace.WithAttributes(attribute.String("report.case_id", caseID)),
	)
	defer span.End()

	caseID = NormalizeCaseID(caseID)
	if !domain.ValidCaseID(caseID) {
		return nil, nil, ErrReportNotFound
	}
	report, err := repo.GetReportByCaseID(ctx, s.DB, caseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrReportNotFound
		}
		return nil, nil, err
	}
	evidence, err := repo.ListEvidence(ctx, s.DB, report.ID)
	if err != nil {
		return nil, nil, err
	}
	return report, evidence, nil
}

// SetStatus moves a report to the given lifecycle status. Every valid status
// is reachable from every other, so only value validity is checked.
func (s *ReportService) SetStatus(ctx context.Context, caseID, status string) (*domain.Report, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "SetStatus",
		trace.WithAttributes(
			attribute.String("report.case_id", caseID),
			attribute.String("report.status", status),
		),
	)
	defer span.End()

	st := domain.ReportStatus(strings.TrimSpace(status))
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	caseID = NormalizeCaseID(caseID)
	if !domain.ValidCaseID(caseID) {
		return nil, ErrReportNotFound
	}
	if err := repo.UpdateReportStatus(ctx, s.DB, caseID, st); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return repo.GetReportByCaseID(ctx, s.DB, caseID)
}

// Delete removes a report with its messages and evidence rows, then removes
// the evidence blobs best-effort. Blob removal failures are not surfaced:
// the rows are gone and the URIs are unreachable.
func (s *ReportService) Delete(ctx context.Context, caseID string) error {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("report.case_id", caseID)),
	)
	defer span.End()

	caseID = NormalizeCaseID(caseID)
	if !domain.ValidCaseID(caseID) {
		return ErrReportNotFound
	}
	report, err := repo.GetReportByCaseID(ctx, s.DB, caseID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	evidence, err := repo.ListEvidence(ctx, s.DB, report.ID)
	if err != nil {
		return err
	}
	// Messages, evidence rows, and the report row go together or not at all.
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repo.DeleteReport(ctx, tx, report.ID)
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrReportNotFound
		}
		return err
	}
	if s.Blobs != nil {
		for _, ev := range evidence {
			_ = s.Blobs.Remove(ctx, ev.FileURI)
		}
	}
	return nil
}

// ListPage returns a page of reports for the authority console, newest first.
// It applies defaults for invalid page/pageSize and returns total count.
func (s *ReportService) ListPage(ctx context.Context, f repo.ReportFilter, page, pageSize int) ([]domain.Report, int64, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountReports(ctx, s.DB, f)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Report{}, 0, nil
	}

	items, err := repo.ListReportsPage(ctx, s.DB, f, offset, pageSize)
	return items, total, err
}

// Stats aggregates report counts by status and category for the dashboard.
func (s *ReportService) Stats(ctx context.Context) (*DashboardStats, error) {
	tr := otel.Tracer("services/ReportService")
	ctx, span := tr.Start(ctx, "Stats")
	defer span.End()

	byStatus, err := repo.CountReportsByStatus(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	byCategory, err := repo.CountReportsByCategory(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	out := &DashboardStats{ByStatus: byStatus, ByCategory: byCategory}
	for st, n := range byStatus {
		out.Total += n
		if st != domain.StatusResolved && st != domain.StatusClosed {
			out.Open += n
		}
	}
	return out, nil
}

// storeUploads writes every upload to the blob store. On any failure the
// already-stored blobs are removed so a rejected submission leaves nothing
// behind.
func (s *ReportService) storeUploads(ctx context.Context, uploads []EvidenceUpload) ([]storedBlob, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	stored := make([]storedBlob, 0, len(uploads))
	for _, up := range uploads {
		uri, err := s.Blobs.Put(ctx, up.FileName, up.Content)
		if err != nil {
			s.removeBlobs(ctx, stored)
			return nil, err
		}
		stored = append(stored, storedBlob{uri: uri, name: up.FileName, size: up.Size})
	}
	return stored, nil
}

// removeBlobs deletes stored blobs best-effort.
func (s *ReportService) removeBlobs(ctx context.Context, stored []storedBlob) {
	for _, b := range stored {
		_ = s.Blobs.Remove(ctx, b.uri)
	}
}

// generateSummary derives a concise listing title from the incident details.
func (s *ReportService) generateSummary(details string) string {
	details = strings.TrimSpace(details)
	if details == "" {
		return ""
	}
	toks := summaryWordRE.FindAllString(strings.ToLower(details), -1)
	if len(toks) == 0 {
		return ""
	}

	titleCaser := cases.Title(s.summaryLocaleOrDefault())
	out := make([]string, 0, 8)
	for _, w := range toks {
		if _, skip := summaryStopWords[w]; skip {
			continue
		}
		out = append(out, titleCaser.String(w))
		if len(out) >= 8 {
			break
		}
	}
	if len(out) == 0 {
		return ""
	}
	return s.clipSummary(strings.Join(out, " "))
}

// clipSummary truncates a generated summary to the configured maximum rune length.
func (s *ReportService) clipSummary(summary string) string {
	max := s.SummaryMaxLen
	if max <= 0 {
		max = 120
	}
	if utf8.RuneCountInString(summary) > max {
		return string([]rune(summary)[:max])
	}
	return summary
}

// summaryLocaleOrDefault returns the configured locale for casing or English if unset.
func (s *ReportService) summaryLocaleOrDefault() language.Tag {
	if s.SummaryLocale == language.Und {
		return language.English
	}
	return s.SummaryLocale
}

// NormalizeCaseID trims and uppercases a client-presented case id. Generated
// ids are always uppercase, so this only forgives typing habits, it never
// widens the match.
func NormalizeCaseID(caseID string) string {
	return strings.ToUpper(strings.TrimSpace(caseID))
}

// trimPtr trims an optional field and collapses blank values to nil.
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}

// --- Summary generation helpers ---

// Extract Unicode letters with optional trailing numbers (e.g., "grade9").
var summaryWordRE = regexp.MustCompile(`[\p{L}]+[\p{N}]*`)

// Minimal English stop-words set for compact summaries.
var summaryStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {},
	"is": {}, "are": {}, "for": {}, "on": {}, "with": {}, "by": {}, "from": {},
	"at": {}, "as": {}, "that": {}, "this": {}, "it": {}, "be": {}, "was": {}, "were": {},
	"i": {}, "my": {}, "me": {}, "we": {}, "our": {}, "he": {}, "she": {}, "they": {},
}
