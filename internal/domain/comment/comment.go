// Package comment defines the Comment entity: an append-only note attached
// to one ticket. Comments are created but never edited or deleted from the
// client; deleting the owning ticket removes them server-side.
package comment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/trackboard/trackboard/internal/domain"
)

const (
	minAuthorLen = 2
	minBodyLen   = 2
	maxBodyLen   = 500
)

// Comment is a note on a ticket. Author is supplied per comment, not derived
// from the session.
type Comment struct {
	ID        string
	TicketID  string
	Author    string
	Body      string
	CreatedAt time.Time
}

// Validate checks creation rules for the Comment entity. Author and Body are
// judged after trimming whitespace, matching the compose-form behavior.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (c *Comment) Validate() error {
	fields := make(map[string]string)

	if utf8.RuneCountInString(strings.TrimSpace(c.Author)) < minAuthorLen {
		fields["author"] = fmt.Sprintf("must be at least %d characters", minAuthorLen)
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(c.Body)); n < minBodyLen {
		fields["body"] = fmt.Sprintf("must be at least %d characters", minBodyLen)
	} else if n > maxBodyLen {
		fields["body"] = fmt.Sprintf("must be at most %d characters", maxBodyLen)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
