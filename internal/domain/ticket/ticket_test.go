package ticket

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/trackboard/trackboard/internal/domain"
)

func strPtr(v string) *string { return &v }

func statusPtr(v Status) *Status { return &v }

func priorityPtr(v Priority) *Priority { return &v }

// requireValidationField asserts err wraps domain.ErrValidation and the
// resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{"open is valid", StatusOpen, true},
		{"in_progress is valid", StatusInProgress, true},
		{"closed is valid", StatusClosed, true},
		{"empty string is invalid", "", false},
		{"unknown value is invalid", "DONE", false},
		{"case sensitive", "open", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatus_Advance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status Status
		want   Status
		wantOK bool
	}{
		{"open advances to in_progress", StatusOpen, StatusInProgress, true},
		{"in_progress advances to closed", StatusInProgress, StatusClosed, true},
		{"closed is terminal", StatusClosed, StatusClosed, false},
		{"unknown does not advance", "DONE", "DONE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.status.Advance()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Status(%q).Advance() = (%q, %v), want (%q, %v)",
					tt.status, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"open to in_progress", StatusOpen, StatusInProgress, true},
		{"open to closed skips a column", StatusOpen, StatusClosed, true},
		{"in_progress to closed", StatusInProgress, StatusClosed, true},
		{"staying in place is allowed", StatusInProgress, StatusInProgress, true},
		{"closed to in_progress is backward", StatusClosed, StatusInProgress, false},
		{"in_progress to open is backward", StatusInProgress, StatusOpen, false},
		{"closed to open is backward", StatusClosed, StatusOpen, false},
		{"invalid source", "DONE", StatusOpen, false},
		{"invalid target", StatusOpen, "DONE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.from.CanTransition(tt.to); got != tt.want {
				t.Errorf("Status(%q).CanTransition(%q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPriority_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		priority Priority
		want     bool
	}{
		{"low is valid", PriorityLow, true},
		{"medium is valid", PriorityMedium, true},
		{"high is valid", PriorityHigh, true},
		{"empty string is invalid", "", false},
		{"unknown value is invalid", "URGENT", false},
		{"case sensitive", "low", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.priority.IsValid(); got != tt.want {
				t.Errorf("Priority(%q).IsValid() = %v, want %v", tt.priority, got, tt.want)
			}
		})
	}
}

func validTicket() Ticket {
	return Ticket{
		ID:          "t1",
		ProjectID:   "p1",
		Title:       "Fix login",
		Description: "Login fails on empty password",
		Priority:    PriorityMedium,
		Status:      StatusOpen,
		Reporter:    "Ada",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestTicket_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Ticket)
		wantField string
	}{
		{
			name:   "valid ticket passes",
			modify: func(_ *Ticket) {},
		},
		{
			name:      "short title fails",
			modify:    func(tk *Ticket) { tk.Title = "abc" },
			wantField: "title",
		},
		{
			name:      "whitespace-padded short title fails",
			modify:    func(tk *Ticket) { tk.Title = "  ab  " },
			wantField: "title",
		},
		{
			name:      "title over 100 runes fails",
			modify:    func(tk *Ticket) { tk.Title = strings.Repeat("x", 101) },
			wantField: "title",
		},
		{
			name:   "title at boundary 100 passes",
			modify: func(tk *Ticket) { tk.Title = strings.Repeat("x", 100) },
		},
		{
			name:   "title at boundary 4 passes",
			modify: func(tk *Ticket) { tk.Title = "abcd" },
		},
		{
			name:      "short description fails",
			modify:    func(tk *Ticket) { tk.Description = "too short" },
			wantField: "description",
		},
		{
			name:   "description at boundary 10 passes",
			modify: func(tk *Ticket) { tk.Description = "exactly 10" },
		},
		{
			name:      "single-rune reporter fails",
			modify:    func(tk *Ticket) { tk.Reporter = "A" },
			wantField: "reporter",
		},
		{
			name:      "invalid priority fails",
			modify:    func(tk *Ticket) { tk.Priority = "URGENT" },
			wantField: "priority",
		},
		{
			name:      "invalid status fails",
			modify:    func(tk *Ticket) { tk.Status = "DONE" },
			wantField: "status",
		},
		{
			name: "multibyte runes count as one character",
			modify: func(tk *Ticket) {
				tk.Title = "héllo"
				tk.Reporter = "Åsa"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tk := validTicket()
			tt.modify(&tk)
			err := tk.Validate()

			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestPatch_IsZero(t *testing.T) {
	t.Parallel()

	if !(&Patch{}).IsZero() {
		t.Error("empty Patch should be zero")
	}
	if (&Patch{Title: strPtr("New title")}).IsZero() {
		t.Error("Patch with a set field should not be zero")
	}
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		patch     Patch
		current   Status
		wantField string
	}{
		{
			name:    "title change passes",
			patch:   Patch{Title: strPtr("Better title")},
			current: StatusOpen,
		},
		{
			name:      "empty patch fails",
			patch:     Patch{},
			current:   StatusOpen,
			wantField: "patch",
		},
		{
			name:      "short title fails",
			patch:     Patch{Title: strPtr("ab")},
			current:   StatusOpen,
			wantField: "title",
		},
		{
			name:      "short description fails",
			patch:     Patch{Description: strPtr("nope")},
			current:   StatusOpen,
			wantField: "description",
		},
		{
			name:      "short reporter fails",
			patch:     Patch{Reporter: strPtr("A")},
			current:   StatusOpen,
			wantField: "reporter",
		},
		{
			name:      "invalid priority fails",
			patch:     Patch{Priority: priorityPtr("URGENT")},
			current:   StatusOpen,
			wantField: "priority",
		},
		{
			name:    "forward status passes",
			patch:   Patch{Status: statusPtr(StatusInProgress)},
			current: StatusOpen,
		},
		{
			name:      "closed to in_progress is rejected",
			patch:     Patch{Status: statusPtr(StatusInProgress)},
			current:   StatusClosed,
			wantField: "status",
		},
		{
			name:      "in_progress to open is rejected",
			patch:     Patch{Status: statusPtr(StatusOpen)},
			current:   StatusInProgress,
			wantField: "status",
		},
		{
			name:      "unknown status is rejected",
			patch:     Patch{Status: statusPtr("DONE")},
			current:   StatusOpen,
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.patch.Validate(tt.current)

			if tt.wantField != "" {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate(%q) = %v, want nil", tt.current, err)
			}
		})
	}
}
