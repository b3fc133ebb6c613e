// Package ticket defines the Ticket entity and its workflow state machine.
package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/trackboard/trackboard/internal/domain"
)

// Field length bounds, matching what the server enforces.
const (
	minTitleLen       = 4
	maxTitleLen       = 100
	minDescriptionLen = 10
	minReporterLen    = 2
)

// Ticket is a unit of work owned by exactly one project for its lifetime.
//
// Reporter holds the name entered in the "Assignee" input at creation; the
// two labels refer to the same attribute and there is deliberately no second
// field. CommentCount is server-maintained and only changes through refetch.
type Ticket struct {
	ID           string
	ProjectID    string
	Title        string
	Description  string
	Priority     Priority
	Status       Status
	Reporter     string
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks creation rules for the Ticket entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Ticket) Validate() error {
	fields := make(map[string]string)

	if n := utf8.RuneCountInString(strings.TrimSpace(t.Title)); n < minTitleLen {
		fields["title"] = fmt.Sprintf("must be at least %d characters", minTitleLen)
	} else if n > maxTitleLen {
		fields["title"] = fmt.Sprintf("must be at most %d characters", maxTitleLen)
	}
	if utf8.RuneCountInString(strings.TrimSpace(t.Description)) < minDescriptionLen {
		fields["description"] = fmt.Sprintf("must be at least %d characters", minDescriptionLen)
	}
	if utf8.RuneCountInString(strings.TrimSpace(t.Reporter)) < minReporterLen {
		fields["reporter"] = fmt.Sprintf("must be at least %d characters", minReporterLen)
	}
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}
	if !t.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", t.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
