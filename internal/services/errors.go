// Package services defines the business logic for incident reports, evidence,
// message threads, the community forum, and the support-resource directory.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Report-related errors.
var (
	// ErrReportNotFound indicates that no report exists for the presented
	// case id. Deliberately indistinguishable from "never existed" so the
	// case id keeps working as an access credential.
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidCategory is returned when a submission names a category
	// outside the enumerated set.
	ErrInvalidCategory = errors.New("invalid report category")

	// ErrInvalidStatus is returned when a status update names a value outside
	// the enumerated lifecycle set.
	ErrInvalidStatus = errors.New("invalid report status")

	// ErrMissingSchoolName is returned when a submission omits the school name.
	ErrMissingSchoolName = errors.New("school name is required")

	// ErrMissingDetails is returned when a submission omits the incident details.
	ErrMissingDetails = errors.New("details are required")

	// ErrCapacityExhausted is returned when case id generation keeps
	// colliding after the configured number of attempts.
	ErrCapacityExhausted = errors.New("case id space exhausted, try again")
)

// Thread-related errors.
var (
	// ErrEmptyMessage is returned when a request to append a thread message
	// contains no text after trimming.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrTooLong is returned when a thread message exceeds the maximum
	// configured length limit.
	ErrTooLong = errors.New("message too long")
)

// Forum-related errors.
var (
	// ErrPostNotFound indicates that the requested forum post does not exist.
	ErrPostNotFound = errors.New("forum post not found")

	// ErrEmptyTitle is returned when a forum post has no title after trimming.
	ErrEmptyTitle = errors.New("title is empty")

	// ErrEmptyBody is returned when a forum post or reply has no body after
	// trimming.
	ErrEmptyBody = errors.New("body is empty")
)

// Resource-related errors.
var (
	// ErrResourceNotFound indicates that the requested directory entry does
	// not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidResource is returned when a directory entry fails validation
	// (blank name/description or unknown category).
	ErrInvalidResource = errors.New("invalid resource")
)
