// Package domain – case identifier generation.
//
// A case id is the reporter's only credential, so the random portion comes
// from a v4 UUID rather than math/rand. Collisions are possible (16 bits of
// hex per year-prefix) and are not checked here: the unique index on
// reports.case_id rejects duplicates and the service layer regenerates.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCasePrefix is the product prefix used when none is configured.
const DefaultCasePrefix = "ESC"

// caseIDRE matches the canonical case id shape: PREFIX-YEAR-XXXX where XXXX
// is 4 uppercase alphanumerics. The prefix is 2–8 uppercase letters.
var caseIDRE = regexp.MustCompile(`^[A-Z]{2,8}-\d{4}-[A-Z0-9]{4}$`)

// NewCaseID produces a human-shareable case identifier like "ESC-2025-7F3A":
// the given prefix, the calendar year of now, and the first 4 hex characters
// of a freshly generated UUID, uppercased. Pure function of clock and
// randomness; uniqueness is the store's responsibility.
func NewCaseID(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultCasePrefix
	}
	u := uuid.New()
	unique := strings.ToUpper(fmt.Sprintf("%x", u[:2]))
	return fmt.Sprintf("%s-%d-%s", strings.ToUpper(prefix), now.Year(), unique)
}

// ValidCaseID reports whether s has the canonical case id shape. Used at the
// HTTP edge to reject junk before touching the store; lookup itself is always
// exact-match.
func ValidCaseID(s string) bool {
	return caseIDRE.MatchString(s)
}
