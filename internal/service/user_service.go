package service

import (
	"context"

	"followup_tracker/internal/api"
	"followup_tracker/internal/model"
	"followup_tracker/internal/normalize"
)

// UserService covers notifications, profile updates and the super-admin
// user management endpoints.
type UserService interface {
	Notifications(ctx context.Context) ([]model.Notification, error)
	UpdateNotificationSettings(ctx context.Context, settings model.NotificationSettings) error
	UpdateProfile(ctx context.Context, updates map[string]string) (*model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	SetUserValidation(ctx context.Context, userID string, validated bool) error
}

type userService struct {
	gw *api.Gateway
}

// NewUserService creates a new UserService.
func NewUserService(gw *api.Gateway) UserService {
	return &userService{gw: gw}
}

func (s *userService) Notifications(ctx context.Context) ([]model.Notification, error) {
	var payload any
	if err := s.gw.Get(ctx, "/user/notifications", nil, &payload); err != nil {
		return nil, err
	}

	notifications := normalize.ExtractListAs[model.Notification](payload)
	for i := range notifications {
		if notifications[i].ID == "" {
			notifications[i].ID = notifications[i].MongoID
		}
	}
	return notifications, nil
}

func (s *userService) UpdateNotificationSettings(ctx context.Context, settings model.NotificationSettings) error {
	return s.gw.Patch(ctx, "/user/notifications/settings", settings, nil)
}

// UpdateProfile patches the profile and returns the updated user record.
// The caller is responsible for pushing the result into the session store.
func (s *userService) UpdateProfile(ctx context.Context, updates map[string]string) (*model.User, error) {
	var payload any
	if err := s.gw.Patch(ctx, "/user/profile", updates, &payload); err != nil {
		return nil, err
	}
	return decodeUser(payload)
}

// AllUsers returns every registered user; super admin only. Ids are
// normalized from the legacy "_id" field.
func (s *userService) AllUsers(ctx context.Context) ([]model.User, error) {
	var payload any
	if err := s.gw.Get(ctx, "/admin/users", nil, &payload); err != nil {
		return nil, err
	}

	users := normalize.ExtractListAs[model.User](payload)
	for i := range users {
		users[i].NormalizeID()
	}
	return users, nil
}

func (s *userService) SetUserValidation(ctx context.Context, userID string, validated bool) error {
	body := map[string]bool{"isValidated": validated}
	return s.gw.Patch(ctx, "/admin/users/"+userID+"/validate", body, nil)
}
