package comment

import (
	"errors"
	"strings"
	"testing"

	"github.com/trackboard/trackboard/internal/domain"
)

func TestComment_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		comment   Comment
		wantField string
	}{
		{
			name:    "valid comment passes",
			comment: Comment{TicketID: "t1", Author: "Ada", Body: "Looks good to me"},
		},
		{
			name:      "single-rune author fails",
			comment:   Comment{TicketID: "t1", Author: "A", Body: "Looks good to me"},
			wantField: "author",
		},
		{
			name:      "whitespace-only author fails",
			comment:   Comment{TicketID: "t1", Author: "   ", Body: "Looks good to me"},
			wantField: "author",
		},
		{
			name:      "single-rune body fails",
			comment:   Comment{TicketID: "t1", Author: "Ada", Body: "x"},
			wantField: "body",
		},
		{
			name:      "whitespace-padded single rune fails",
			comment:   Comment{TicketID: "t1", Author: "Ada", Body: "  x  "},
			wantField: "body",
		},
		{
			name:      "body over 500 runes fails",
			comment:   Comment{TicketID: "t1", Author: "Ada", Body: strings.Repeat("x", 501)},
			wantField: "body",
		},
		{
			name:    "body at boundary 500 passes",
			comment: Comment{TicketID: "t1", Author: "Ada", Body: strings.Repeat("x", 500)},
		},
		{
			name:    "body at boundary 2 passes",
			comment: Comment{TicketID: "t1", Author: "Ada", Body: "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.comment.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("errors.Is(err, ErrValidation) = false, got %v", err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("ValidationError.Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}
