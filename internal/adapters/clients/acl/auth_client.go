package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/trackboard/trackboard/internal/domain"
	"github.com/trackboard/trackboard/internal/platform/httpclient"
	"github.com/trackboard/trackboard/internal/ports"
)

// Compile-time interface check.
var _ ports.AuthClient = (*AuthClient)(nil)

// userDTO matches the tracker API's user schema, minus the password the
// server already strips from responses.
type userDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// authResponseDTO matches the {success, message, user} envelope returned by
// the signup and login endpoints.
type authResponseDTO struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    userDTO `json:"user"`
}

type loginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthClient is the outbound adapter for the tracker API's auth endpoints.
// It implements [ports.AuthClient]. Credentials pass through to the wire and
// are never logged; the logging layer additionally redacts password fields.
type AuthClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewAuthClient creates an AuthClient that sends requests through the given
// [httpclient.Client].
func NewAuthClient(client *httpclient.Client, logger *slog.Logger) *AuthClient {
	return &AuthClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Login sends a POST /api/login and returns the authenticated identity.
// Wrong credentials surface as [domain.ErrForbidden] (401) or
// [domain.ErrValidation] (the API answers 400 for an unknown email).
func (c *AuthClient) Login(ctx context.Context, email, password string) (*domain.User, error) {
	reqDTO := loginRequestDTO{Email: email, Password: password}

	var respDTO authResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/login", http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return toUser(respDTO.User), nil
}

// Signup sends a POST /api/signup and returns the created identity.
// A duplicate email surfaces as [domain.ErrValidation] (the API answers 400).
func (c *AuthClient) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	reqDTO := signupRequestDTO{Name: name, Email: email, Password: password}

	var respDTO authResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/signup", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	return toUser(respDTO.User), nil
}

func toUser(dto userDTO) *domain.User {
	return &domain.User{
		ID:    dto.ID,
		Name:  dto.Name,
		Email: dto.Email,
	}
}
