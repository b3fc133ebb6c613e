// Package acl implements the Anti-Corruption Layer that translates between
// the tracker API's wire representations and domain types. Resource-specific
// translators live in subpackages (acl/project, acl/ticket, acl/comment);
// shared request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/trackboard/trackboard/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody represents the tracker API's error response shapes: a plain
// message ({"error": "..."}), the auth endpoints' {"success": false,
// "message": "..."}, or, for validation rejections, a list of issues
// ({"issues": [{"message": "..."}]}).
type errorBody struct {
	Error   string  `json:"error"`
	Message string  `json:"message"`
	Issues  []issue `json:"issues"`
}

// issue is a single validation complaint. The server reports only a message,
// no field path.
type issue struct {
	Message string `json:"message"`
}

// TranslateHTTPError maps an HTTP error response to a domain error.
//
// Status mapping:
//   - 404            → domain.ErrNotFound
//   - 400, 422       → domain.ErrValidation (issues joined into the message)
//   - 401, 403       → domain.ErrForbidden
//   - 5xx            → domain.ErrUnavailable
//   - anything else  → plain error naming the status
func TranslateHTTPError(resp *http.Response) error {
	eb := parseErrorBody(resp)

	detail := eb.Error
	if detail == "" {
		detail = eb.Message
	}
	if detail == "" && len(eb.Issues) > 0 {
		detail = joinIssues(eb.Issues)
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorBody attempts to read and parse an error body from the response.
// Returns a zero errorBody if parsing fails; callers fall back to the HTTP
// status text.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return errorBody{}
	}
	return eb
}

// joinIssues flattens validation issues into a single semicolon-separated
// message.
func joinIssues(issues []issue) string {
	msgs := make([]string, 0, len(issues))
	for _, is := range issues {
		if is.Message != "" {
			msgs = append(msgs, is.Message)
		}
	}
	return strings.Join(msgs, "; ")
}
