// Package domain defines the persistence models for incident reports,
// evidence attachments, and the per-report message thread, plus the public
// forum and support-resource directory. These types are mapped with GORM and
// form the core data layer of the reporting backend.
package domain

import (
	"time"
)

// ReportStatus is the lifecycle state of a report. Any valid status is
// reachable from any other; validity of the value itself is enforced at the
// service boundary.
type ReportStatus string

const (
	StatusSubmitted  ReportStatus = "Submitted"
	StatusInReview   ReportStatus = "Under Review"
	StatusInProgress ReportStatus = "Action in Progress"
	StatusResolved   ReportStatus = "Resolved"
	StatusClosed     ReportStatus = "Closed"
)

// ReportStatuses returns all legal status values in lifecycle order.
func ReportStatuses() []ReportStatus {
	return []ReportStatus{StatusSubmitted, StatusInReview, StatusInProgress, StatusResolved, StatusClosed}
}

// Valid reports whether s is one of the enumerated status values.
func (s ReportStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInReview, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// ReportCategory classifies the concern being reported.
type ReportCategory string

const (
	CategoryBullying ReportCategory = "Bullying"
	CategorySafety   ReportCategory = "Safety"
	CategoryAcademic ReportCategory = "Academic"
	CategoryConduct  ReportCategory = "Conduct"
	CategoryNeglect  ReportCategory = "Neglect"
	CategoryOther    ReportCategory = "Other"
)

// ReportCategories returns all legal category values.
func ReportCategories() []ReportCategory {
	return []ReportCategory{CategoryBullying, CategorySafety, CategoryAcademic, CategoryConduct, CategoryNeglect, CategoryOther}
}

// Valid reports whether c is one of the enumerated category values.
func (c ReportCategory) Valid() bool {
	switch c {
	case CategoryBullying, CategorySafety, CategoryAcademic, CategoryConduct, CategoryNeglect, CategoryOther:
		return true
	}
	return false
}

// Label returns the human-readable display label for the category.
func (c ReportCategory) Label() string {
	switch c {
	case CategoryBullying:
		return "Bullying & Harassment"
	case CategorySafety:
		return "Safety & Security Concern"
	case CategoryAcademic:
		return "Academic Issue / Unfair Treatment"
	case CategoryConduct:
		return "Teacher / Staff Conduct"
	case CategoryNeglect:
		return "Child Neglect or Abuse"
	case CategoryOther:
		return "Other Concern"
	}
	return string(c)
}

// SenderType marks who authored a thread message. The value is always chosen
// server-side by the appending route, never taken from client payloads.
type SenderType string

const (
	SenderUser      SenderType = "User"
	SenderAuthority SenderType = "Authority"
)

// Valid reports whether s is a recognized sender type.
func (s SenderType) Valid() bool {
	return s == SenderUser || s == SenderAuthority
}

// Report represents one citizen-submitted incident report. The case id is the
// only externally valid handle: it doubles as the reporter's access
// credential, so the surrogate ID is never serialized.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), internal only.
//   - CaseID: human-shareable token, e.g. "ESC-2025-7F3A"; unique, immutable.
//   - Category: one of the enumerated report categories.
//   - SchoolName / Details: required free text.
//   - Summary: short title auto-generated from Details for admin listings.
//   - ReporterName / ReporterEmail: optional contact info (anonymity supported).
//   - Status: lifecycle state, starts at Submitted.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Report struct {
	ID            string         `json:"-"              gorm:"type:char(36);primaryKey"`
	CaseID        string         `json:"case_id"        gorm:"type:varchar(20);not null;uniqueIndex:ux_reports_case_id"`
	Category      ReportCategory `json:"category"       gorm:"type:varchar(20);not null"`
	SchoolName    string         `json:"school_name"    gorm:"type:varchar(255);not null"`
	Details       string         `json:"details"        gorm:"type:text;not null"`
	Summary       string         `json:"summary"        gorm:"type:varchar(120)"`
	ReporterName  *string        `json:"reporter_name,omitempty"  gorm:"type:varchar(255)"`
	ReporterEmail *string        `json:"reporter_email,omitempty" gorm:"type:varchar(255)"`
	Status        ReportStatus   `json:"status"         gorm:"type:varchar(20);not null;default:'Submitted'"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName returns the database table name for Report.
func (Report) TableName() string { return "reports" }

// Evidence is one uploaded file linked to a report. Rows are append-only:
// there is no update path, and they are cascade-deleted with the parent
// report. The FileURI is the opaque handle returned by the blob store.
type Evidence struct {
	ID         uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	ReportID   string    `json:"-"           gorm:"type:char(36);not null;index:idx_report_evidence"`
	FileURI    string    `json:"file_uri"    gorm:"type:varchar(512);not null"`
	FileName   string    `json:"file_name"   gorm:"type:varchar(255)"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`

	// Report is the owning aggregate. Evidence is cascade-deleted if the
	// report is removed.
	Report Report `json:"-" gorm:"foreignKey:ReportID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Evidence.
func (Evidence) TableName() string { return "evidence" }

// ReportMessage is a single message in the chat thread attached to a report.
// Thread order is creation order: ascending CreatedAt with the auto-increment
// ID as insertion-sequence tiebreaker. Messages are never edited or deleted
// individually.
type ReportMessage struct {
	ID         uint       `json:"id"          gorm:"primaryKey;autoIncrement"`
	ReportID   string     `json:"-"           gorm:"type:char(36);not null;index:idx_report_msgs,priority:1"`
	SenderType SenderType `json:"sender_type" gorm:"type:varchar(10);not null;check:sender_type IN ('User','Authority')"`
	Message    string     `json:"message"     gorm:"type:text;not null"`
	CreatedAt  time.Time  `json:"created_at"  gorm:"index:idx_report_msgs,priority:2"`

	// Report is the parent aggregate. Messages are cascade-deleted if the
	// report is removed.
	Report Report `json:"-" gorm:"foreignKey:ReportID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ReportMessage.
func (ReportMessage) TableName() string { return "report_messages" }

// ForumPost is an anonymous discussion-board post.
type ForumPost struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	Title     string    `json:"title"      gorm:"type:varchar(255);not null"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for ForumPost.
func (ForumPost) TableName() string { return "forum_posts" }

// ForumReply belongs to one post and is cascade-deleted with it.
type ForumReply struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	PostID    uint      `json:"-"          gorm:"not null;index"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`

	Post ForumPost `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for ForumReply.
func (ForumReply) TableName() string { return "forum_replies" }

// ResourceCategory classifies a support-directory entry.
type ResourceCategory string

const (
	ResourceMentalHealth ResourceCategory = "Mental Health"
	ResourceLegalAid     ResourceCategory = "Legal Aid"
	ResourceSupportGroup ResourceCategory = "Support Group"
	ResourceOnlineSafety ResourceCategory = "Online Safety"
	ResourceEmergency    ResourceCategory = "Emergency"
)

// Valid reports whether c is a recognized resource category.
func (c ResourceCategory) Valid() bool {
	switch c {
	case ResourceMentalHealth, ResourceLegalAid, ResourceSupportGroup, ResourceOnlineSafety, ResourceEmergency:
		return true
	}
	return false
}

// Resource is one entry in the support-resource directory.
type Resource struct {
	ID          uint             `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string           `json:"name"        gorm:"type:varchar(255);not null"`
	Description string           `json:"description" gorm:"type:text;not null"`
	Category    ResourceCategory `json:"category"    gorm:"type:varchar(20);not null"`
	Phone       *string          `json:"phone,omitempty"   gorm:"type:varchar(100)"`
	Website     *string          `json:"website,omitempty" gorm:"type:varchar(255)"`
}

// TableName returns the database table name for Resource.
func (Resource) TableName() string { return "resources" }
