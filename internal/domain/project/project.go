// Package project defines the Project entity: a named grouping container for
// tickets, nested under a parent project identifier. Project lists are always
// fetched scoped to one parent.
package project

import (
	"strings"
	"time"

	"github.com/trackboard/trackboard/internal/domain"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// Project is a named container for tickets. IDs and timestamps are
// server-assigned; the client never fabricates either.
type Project struct {
	ID            string
	Name          string
	ParentProject string
	CreatedAt     time.Time
}

// Validate checks creation rules for the Project entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = msgRequired
	}
	if strings.TrimSpace(p.ParentProject) == "" {
		fields["parentProject"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
