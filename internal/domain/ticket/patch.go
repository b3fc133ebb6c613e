package ticket

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/trackboard/trackboard/internal/domain"
)

// Patch is a partial update to a ticket. Nil fields are left unchanged on the
// server; only set fields are sent over the wire.
type Patch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	Reporter    *string
}

// IsZero reports whether the patch carries no changes.
func (p *Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Status == nil && p.Reporter == nil
}

// Validate checks each set field against the creation bounds and enforces
// the forward-only workflow: a status change from current to a state earlier
// in the workflow is rejected here, before any request is issued. The wire
// protocol would accept a backward patch; this layer does not.
//
// Returns a *domain.ValidationError with per-field details, or nil.
func (p *Patch) Validate(current Status) error {
	fields := make(map[string]string)

	if p.IsZero() {
		fields["patch"] = "no fields to update"
	}

	if p.Title != nil {
		if n := utf8.RuneCountInString(strings.TrimSpace(*p.Title)); n < minTitleLen {
			fields["title"] = fmt.Sprintf("must be at least %d characters", minTitleLen)
		} else if n > maxTitleLen {
			fields["title"] = fmt.Sprintf("must be at most %d characters", maxTitleLen)
		}
	}
	if p.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*p.Description)) < minDescriptionLen {
		fields["description"] = fmt.Sprintf("must be at least %d characters", minDescriptionLen)
	}
	if p.Reporter != nil && utf8.RuneCountInString(strings.TrimSpace(*p.Reporter)) < minReporterLen {
		fields["reporter"] = fmt.Sprintf("must be at least %d characters", minReporterLen)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *p.Priority)
	}
	if p.Status != nil {
		switch {
		case !p.Status.IsValid():
			fields["status"] = fmt.Sprintf("invalid: %q", *p.Status)
		case !current.CanTransition(*p.Status):
			fields["status"] = fmt.Sprintf("cannot move backward from %s to %s", current, *p.Status)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
