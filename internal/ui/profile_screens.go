package ui

import (
	"context"
	"log"

	"followup_tracker/internal/model"
	"followup_tracker/internal/nav"
	"followup_tracker/internal/utils"
)

func (a *App) profileScreen(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	a.printf("\n== Profile ==\n")
	a.printf("Name:  %s\nEmail: %s\nRole:  %s\n", user.Name, user.Email, model.NormalizeRole(user.Role))
	if info, err := utils.PeekToken(a.store.Token()); err == nil && !info.ExpiresAt.IsZero() {
		a.printf("Session expires: %s\n", info.ExpiresAt.Format("2006-01-02 15:04"))
	}

	choice, err := a.promptChoice("Choose", []string{
		"Edit profile",
		"Change password",
		"Notification settings",
		"Log out",
		"Back to dashboard",
	})
	if err != nil {
		return err
	}
	switch choice {
	case 0:
		a.router.Navigate(nav.ScreenEditProfile)
	case 1:
		a.router.Navigate(nav.ScreenChangePassword)
	case 2:
		a.router.Navigate(nav.ScreenNotificationSettings)
	case 3:
		a.router.Logout(ctx)
	case 4:
		a.router.Navigate(nav.ScreenDashboard)
	}
	return nil
}

func (a *App) editProfileScreen(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	a.printf("\n== Edit Profile ==\n(press enter to keep the current value)\n")
	name, err := a.promptDefault("Name", user.Name)
	if err != nil {
		return err
	}
	picture, err := a.promptDefault("Profile picture URL", user.ProfilePicture)
	if err != nil {
		return err
	}

	updates := map[string]string{"name": name, "profilePicture": picture}
	var updated *model.User
	callErr := a.withLoading(func() error {
		var err error
		updated, err = a.users.UpdateProfile(ctx, updates)
		return err
	})
	if callErr != nil {
		a.printf("Could not save profile: %v\n", callErr)
		a.router.Navigate(nav.ScreenProfile)
		return nil
	}

	if err := a.store.UpdateUser(ctx, updated); err != nil {
		log.Printf("ERROR: profile saved but session update failed: %v", err)
	}
	a.printf("Profile saved.\n")
	a.router.Navigate(nav.ScreenProfile)
	return nil
}

func (a *App) changePasswordScreen(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}

	a.printf("\n== Change Password ==\n")
	current, err := a.prompt("Current password")
	if err != nil {
		return err
	}
	password, err := a.prompt("New password")
	if err != nil {
		return err
	}
	confirm, err := a.prompt("Confirm new password")
	if err != nil {
		return err
	}
	if err := utils.ValidatePassword(password, confirm); err != nil {
		a.printf("%v\n", err)
		return nil
	}

	callErr := a.withLoading(func() error {
		return a.auth.ChangePassword(ctx, current, password)
	})
	if callErr != nil {
		a.printf("Could not change password: %v\n", callErr)
		return nil
	}

	a.printf("Password changed.\n")
	a.router.Navigate(nav.ScreenProfile)
	return nil
}

func (a *App) notificationSettingsScreen(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}

	a.printf("\n== Notification Settings ==\n(y/n for each)\n")
	settings := model.NotificationSettings{}
	prompts := []struct {
		label string
		value *bool
	}{
		{"Follow-up reminders", &settings.FollowUpReminders},
		{"Pending actions", &settings.PendingActions},
		{"New converts", &settings.NewConverts},
		{"Weekly reports", &settings.WeeklyReports},
	}
	for _, p := range prompts {
		raw, err := a.prompt(p.label + " (y/n)")
		if err != nil {
			return err
		}
		*p.value = raw == "y" || raw == "Y" || raw == "yes"
	}

	callErr := a.withLoading(func() error {
		return a.users.UpdateNotificationSettings(ctx, settings)
	})
	if callErr != nil {
		a.printf("Could not save settings: %v\n", callErr)
		return nil
	}

	a.printf("Settings saved.\n")
	a.router.Navigate(nav.ScreenProfile)
	return nil
}
