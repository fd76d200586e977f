package service

import (
	"context"
	"errors"
	"fmt"

	"followup_tracker/internal/api"
	"followup_tracker/internal/model"
	"followup_tracker/internal/normalize"
	"followup_tracker/internal/session"
)

// ErrAuthResponseIncomplete means the server answered 2xx but the response
// held no locatable user+token pair. The session must not be partially
// applied in that case.
var ErrAuthResponseIncomplete = errors.New("authentication response was missing user or token")

// AuthService provides authentication related operations.
type AuthService interface {
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	Profile(ctx context.Context) (*model.User, error)
}

type authService struct {
	gw    *api.Gateway
	store *session.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(gw *api.Gateway, store *session.Store) AuthService {
	return &authService{gw: gw, store: store}
}

// Signup registers a new account and establishes the session from the
// normalized response.
func (s *authService) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	var payload any
	if err := s.gw.Post(ctx, "/auth/signup", req, &payload); err != nil {
		return nil, err
	}
	return s.establishFromPayload(ctx, payload)
}

// Login authenticates and establishes the session from the normalized
// response.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	req := model.LoginRequest{Email: email, Password: password}
	var payload any
	if err := s.gw.Post(ctx, "/auth/login", req, &payload); err != nil {
		return nil, err
	}
	return s.establishFromPayload(ctx, payload)
}

func (s *authService) establishFromPayload(ctx context.Context, payload any) (*model.User, error) {
	user, token, ok := normalize.ExtractAuth(payload)
	if !ok {
		return nil, ErrAuthResponseIncomplete
	}
	if err := s.store.Establish(ctx, user, token); err != nil {
		return nil, fmt.Errorf("failed to establish session: %w", err)
	}
	return user, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.gw.Post(ctx, "/auth/forgot-password", body, nil)
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return s.gw.Post(ctx, "/auth/reset-password", body, nil)
}

func (s *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return s.gw.Post(ctx, "/auth/change-password", body, nil)
}

// Profile fetches the authenticated user's profile. The record arrives
// either bare or wrapped under "user"/"data" depending on server version.
func (s *authService) Profile(ctx context.Context) (*model.User, error) {
	var payload any
	if err := s.gw.Get(ctx, "/auth/profile", nil, &payload); err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// decodeUser unwraps a possibly nested user record.
func decodeUser(payload any) (*model.User, error) {
	candidate := payload
	if root, ok := payload.(map[string]any); ok {
		for _, key := range []string{"user", "data"} {
			if inner, ok := root[key].(map[string]any); ok {
				candidate = inner
				break
			}
		}
	}

	var user model.User
	if err := normalize.Rebind(candidate, &user); err != nil || user.IsZero() {
		return nil, errors.New("response did not contain a user record")
	}
	user.NormalizeID()
	return &user, nil
}
