package ports

import "github.com/trackboard/trackboard/internal/domain"

// Confirmer is the view-layer collaborator that gates destructive actions.
// Delete operations ask for confirmation before any request is sent; a
// declined prompt means no request is issued at all.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// SessionStore persists the signed-in identity between runs, standing in for
// the browser's local storage. Load returns (nil, nil) when no identity is
// persisted; Clear on a missing store is a no-op.
type SessionStore interface {
	Load() (*domain.User, error)
	Save(u *domain.User) error
	Clear() error
}
