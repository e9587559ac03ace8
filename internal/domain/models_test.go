package domain

import "testing"

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		"reports":         Report{}.TableName(),
		"evidence":        Evidence{}.TableName(),
		"report_messages": ReportMessage{}.TableName(),
		"forum_posts":     ForumPost{}.TableName(),
		"forum_replies":   ForumReply{}.TableName(),
		"resources":       Resource{}.TableName(),
		"submissions":     Submission{}.TableName(),
	}
	for want, got := range cases {
		if got != want {
			t.Errorf("TableName = %q, want %q", got, want)
		}
	}
}

func TestReportStatus_Valid(t *testing.T) {
	for _, s := range ReportStatuses() {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, s := range []ReportStatus{"", "submitted", "Reviewed", "Done"} {
		if s.Valid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestReportCategory_ValidAndLabel(t *testing.T) {
	for _, c := range ReportCategories() {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
		if c.Label() == "" {
			t.Errorf("category %q has empty label", c)
		}
	}
	if ReportCategory("Gossip").Valid() {
		t.Error("unknown category should be invalid")
	}
	if got := CategoryBullying.Label(); got != "Bullying & Harassment" {
		t.Errorf("unexpected label %q", got)
	}
}

func TestSenderType_Valid(t *testing.T) {
	if !SenderUser.Valid() || !SenderAuthority.Valid() {
		t.Error("enumerated sender types must be valid")
	}
	for _, s := range []SenderType{"", "user", "admin", "Authority "} {
		if s.Valid() {
			t.Errorf("sender %q should be invalid", s)
		}
	}
}

func TestResourceCategory_Valid(t *testing.T) {
	for _, c := range []ResourceCategory{ResourceMentalHealth, ResourceLegalAid, ResourceSupportGroup, ResourceOnlineSafety, ResourceEmergency} {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if ResourceCategory("Housing").Valid() {
		t.Error("unknown resource category should be invalid")
	}
}
