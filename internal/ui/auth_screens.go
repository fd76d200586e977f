package ui

import (
	"context"
	"log"

	"followup_tracker/internal/model"
	"followup_tracker/internal/nav"
	"followup_tracker/internal/utils"
)

func (a *App) splashScreen(ctx context.Context) error {
	a.printf("\n  Soul Winning Adventure\n  Follow-up Tracker\n\n  %s\n\n", verseOfDay())
	return a.waitForScreenChange(ctx, nav.ScreenSplash)
}

func (a *App) loginScreen(ctx context.Context) error {
	a.printf("\n== Sign In ==\n")
	choice, err := a.promptChoice("Choose", []string{
		"Sign in",
		"Create an account",
		"Forgot password",
		"Quit",
	})
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		a.router.Navigate(nav.ScreenSignup)
		return nil
	case 2:
		a.router.Navigate(nav.ScreenForgotPassword)
		return nil
	case 3:
		return errQuit
	}

	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.prompt("Password")
	if err != nil {
		return err
	}
	if err := utils.RequireFields(map[string]string{"email": email, "password": password}, "email", "password"); err != nil {
		a.printf("%v\n", err)
		return nil
	}

	var user *model.User
	callErr := a.withLoading(func() error {
		var err error
		user, err = a.auth.Login(ctx, email, password)
		return err
	})
	if callErr != nil {
		a.printf("Sign in failed: %v\n", callErr)
		return nil
	}

	a.printf("Welcome back, %s.\n", user.Name)
	a.router.Navigate(nav.ScreenDashboard)
	return nil
}

// signupScreen is a two step flow: account details first, then role and the
// zone/area/parish placement that role requires.
func (a *App) signupScreen(ctx context.Context) error {
	a.printf("\n== Create Account (step 1 of 2) ==\n")
	name, err := a.prompt("Full name")
	if err != nil {
		return err
	}
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.prompt("Password")
	if err != nil {
		return err
	}
	confirm, err := a.prompt("Confirm password")
	if err != nil {
		return err
	}

	if err := utils.RequireFields(map[string]string{"name": name, "email": email}, "name", "email"); err != nil {
		a.printf("%v\n", err)
		return nil
	}
	if err := utils.ValidatePassword(password, confirm); err != nil {
		a.printf("%v\n", err)
		return nil
	}

	a.printf("\n== Create Account (step 2 of 2) ==\n")
	roleIdx, err := a.promptChoice("Role", []string{
		"Soul winner",
		"Parish admin",
		"Area admin",
		"Zonal admin",
	})
	if err != nil {
		return err
	}
	role := []string{
		model.RoleSoulWinner,
		model.RoleParishAdmin,
		model.RoleAreaAdmin,
		model.RoleZonalAdmin,
	}[roleIdx]

	req := model.SignupRequest{Name: name, Email: email, Password: password, Role: role}
	if err := a.promptPlacement(role, &req); err != nil {
		return err
	}

	var user *model.User
	callErr := a.withLoading(func() error {
		var err error
		user, err = a.auth.Signup(ctx, req)
		return err
	})
	if callErr != nil {
		a.printf("Signup failed: %v\n", callErr)
		return nil
	}

	a.printf("Account created. Welcome, %s.\n", user.Name)
	a.router.Navigate(nav.ScreenDashboard)
	return nil
}

// promptPlacement walks the zone > area > parish cascade, stopping at the
// level the chosen role administers.
func (a *App) promptPlacement(role string, req *model.SignupRequest) error {
	zones := a.church.Zones()
	names := make([]string, len(zones))
	for i, z := range zones {
		names[i] = z.Name
	}
	idx, err := a.promptChoice("Zone", names)
	if err != nil {
		return err
	}
	req.ZonalID = zones[idx].ID
	if role == model.RoleZonalAdmin {
		return nil
	}

	areas := a.church.Areas(req.ZonalID)
	names = make([]string, len(areas))
	for i, area := range areas {
		names[i] = area.Name
	}
	idx, err = a.promptChoice("Area", names)
	if err != nil {
		return err
	}
	req.AreaID = areas[idx].ID
	if role == model.RoleAreaAdmin {
		return nil
	}

	parishes := a.church.Parishes(req.AreaID)
	names = make([]string, len(parishes))
	for i, p := range parishes {
		names[i] = p.Name
	}
	idx, err = a.promptChoice("Parish", names)
	if err != nil {
		return err
	}
	req.ParishID = parishes[idx].ID
	return nil
}

func (a *App) forgotPasswordScreen(ctx context.Context) error {
	a.printf("\n== Forgot Password ==\n")
	email, err := a.prompt("Email (blank to go back)")
	if err != nil {
		return err
	}
	if email == "" {
		a.router.Navigate(nav.ScreenLogin)
		return nil
	}

	callErr := a.withLoading(func() error {
		return a.auth.ForgotPassword(ctx, email)
	})
	if callErr != nil {
		a.printf("Request failed: %v\n", callErr)
		return nil
	}

	a.printf("If that address is registered, a reset link is on its way.\n")
	a.router.Navigate(nav.ScreenLogin)
	return nil
}

func (a *App) resetPasswordScreen(ctx context.Context) error {
	a.printf("\n== Reset Password ==\n")

	token := a.router.ResetToken()
	if token == "" {
		var err error
		token, err = a.prompt("Reset token (blank to go back)")
		if err != nil {
			return err
		}
		if token == "" {
			a.router.Navigate(nav.ScreenLogin)
			return nil
		}
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
		return a.auth.ResetPassword(ctx, token, password)
	})
	if callErr != nil {
		a.printf("Reset failed: %v\n", callErr)
		log.Printf("ERROR: password reset rejected: %v", callErr)
		return nil
	}

	a.printf("Password updated. Please sign in.\n")
	a.router.Navigate(nav.ScreenLogin)
	return nil
}
