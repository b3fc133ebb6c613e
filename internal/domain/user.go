package domain

// User is the identity supplied by the auth collaborator. The core consumes
// only the display name (to pre-fill the reporter default); it carries no
// authorization semantics.
type User struct {
	ID    string
	Name  string
	Email string
}
