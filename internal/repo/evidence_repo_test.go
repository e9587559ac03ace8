package repo

import (
	"context"
	"testing"
	"time"

	"github.com/schoolsafe/go-report-backend/internal/domain"
)

func TestCreateEvidence_AndList(t *testing.T) {
	db := newRepoDB(t, &domain.Report{}, &domain.Evidence{})
	r := seedReport(t, db, "ESC-2025-AAAA")

	e1, err := CreateEvidence(db, r.ID, "file:///uploads/a.png", "a.png", 1024)
	if err != nil {
		t.Fatalf("CreateEvidence: %v", err)
	}
	if e1.ID == 0 || e1.UploadedAt.IsZero() {
		t.Fatalf("evidence fields not populated: %+v", e1)
	}
	if _, err := CreateEvidence(db, r.ID, "file:///uploads/b.pdf", "b.pdf", 2048); err != nil {
		t.Fatalf("second CreateEvidence: %v", err)
	}

	list, err := ListEvidence(context.Background(), db, r.ID)
	if err != nil {
		t.Fatalf("ListEvidence: %v", err)
	}
	if len(list) != 2 || list[0].FileName != "a.png" || list[1].FileName != "b.pdf" {
		t.Fatalf("unexpected list: %+v", list)
	}

	total, err := CountEvidence(context.Background(), db, r.ID)
	if err != nil || total != 2 {
		t.Fatalf("CountEvidence = %d, %v", total, err)
	}
}

func TestListEvidence_UploadOrder(t *testing.T) {
	db := newRepoDB(t, &domain.Report{}, &domain.Evidence{})
	r := seedReport(t, db, "ESC-2025-AAAA")

	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"one", "two", "three"} {
		e := &domain.Evidence{
			ReportID:   r.ID,
			FileURI:    "file:///" + name,
			FileName:   name,
			UploadedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(e).Error; err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}

	list, err := ListEvidence(context.Background(), db, r.ID)
	if err != nil {
		t.Fatalf("ListEvidence: %v", err)
	}
	if list[0].FileName != "one" || list[2].FileName != "three" {
		t.Fatalf("expected upload order, got %+v", list)
	}
}
