// Package ui renders the terminal screens. Each screen is one method on
// App: it draws from the current session and navigation state, runs its
// prompts, and hands control back to the run loop, which dispatches on
// whatever screen the router points at next.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"followup_tracker/internal/model"
	"followup_tracker/internal/nav"
	"followup_tracker/internal/service"
	"followup_tracker/internal/session"
)

// errQuit unwinds a screen when the user asks to exit or stdin closes.
var errQuit = errors.New("quit")

// App wires the screens to the services and the navigation router.
type App struct {
	router    *nav.Router
	store     *session.Store
	auth      service.AuthService
	converts  service.ConvertService
	dashboard service.DashboardService
	users     service.UserService
	church    service.ChurchService

	searcher *Searcher

	in  *bufio.Scanner
	out io.Writer

	mu      sync.Mutex
	loading bool
}

// Services bundles everything App needs so the constructor stays readable.
type Services struct {
	Auth      service.AuthService
	Converts  service.ConvertService
	Dashboard service.DashboardService
	Users     service.UserService
	Church    service.ChurchService
}

// NewApp creates the terminal application reading from in and writing to out.
func NewApp(router *nav.Router, store *session.Store, svc Services, in io.Reader, out io.Writer) *App {
	app := &App{
		router:    router,
		store:     store,
		auth:      svc.Auth,
		converts:  svc.Converts,
		dashboard: svc.Dashboard,
		users:     svc.Users,
		church:    svc.Church,
		in:        bufio.NewScanner(in),
		out:       out,
	}
	app.searcher = NewSearcher(func(ctx context.Context, query string) ([]model.Convert, error) {
		return svc.Converts.List(ctx, 1, query, nil)
	})
	return app
}

// Run drives the screen loop until the user quits or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		switch a.router.Current() {
		case nav.ScreenSplash:
			err = a.splashScreen(ctx)
		case nav.ScreenLogin:
			err = a.loginScreen(ctx)
		case nav.ScreenSignup:
			err = a.signupScreen(ctx)
		case nav.ScreenForgotPassword:
			err = a.forgotPasswordScreen(ctx)
		case nav.ScreenResetPassword:
			err = a.resetPasswordScreen(ctx)
		case nav.ScreenDashboard:
			err = a.dashboardScreen(ctx)
		case nav.ScreenAddConvert:
			err = a.addConvertScreen(ctx)
		case nav.ScreenConvertsList:
			err = a.convertsListScreen(ctx)
		case nav.ScreenConvertDetails:
			err = a.convertDetailsScreen(ctx)
		case nav.ScreenEditConvert:
			err = a.editConvertScreen(ctx)
		case nav.ScreenReports:
			err = a.reportsScreen(ctx)
		case nav.ScreenDetailedReport:
			err = a.detailedReportScreen(ctx)
		case nav.ScreenParishAdmin:
			err = a.adminScreen(ctx, "Parish", model.RoleParishAdmin, "parishId")
		case nav.ScreenAreaAdmin:
			err = a.adminScreen(ctx, "Area", model.RoleAreaAdmin, "areaId")
		case nav.ScreenZonalAdmin:
			err = a.adminScreen(ctx, "Zone", model.RoleZonalAdmin, "zonalId")
		case nav.ScreenProfile:
			err = a.profileScreen(ctx)
		case nav.ScreenEditProfile:
			err = a.editProfileScreen(ctx)
		case nav.ScreenChangePassword:
			err = a.changePasswordScreen(ctx)
		case nav.ScreenNotificationSettings:
			err = a.notificationSettingsScreen(ctx)
		case nav.ScreenUserManagement:
			err = a.userManagementScreen(ctx)
		default:
			a.router.Navigate(nav.ScreenDashboard)
		}

		if errors.Is(err, errQuit) {
			a.printf("Goodbye.\n")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Loading reports whether a network call is in flight. The flag must be
// cleared on every exit path, success or failure, so screens set it through
// withLoading only.
func (a *App) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *App) setLoading(v bool) {
	a.mu.Lock()
	a.loading = v
	a.mu.Unlock()
}

// withLoading runs fn with the loading flag set, clearing it no matter how
// fn returns.
func (a *App) withLoading(fn func() error) error {
	a.setLoading(true)
	defer a.setLoading(false)
	return fn()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line of input. A closed stdin quits the application.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s: ", label)
	if !a.in.Scan() {
		return "", errQuit
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// promptDefault reads one line, keeping the current value on empty input.
func (a *App) promptDefault(label, current string) (string, error) {
	value, err := a.prompt(fmt.Sprintf("%s [%s]", label, current))
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// promptChoice renders a numbered list and returns the chosen index.
func (a *App) promptChoice(label string, options []string) (int, error) {
	for i, option := range options {
		a.printf("  %d) %s\n", i+1, option)
	}
	for {
		raw, err := a.prompt(label)
		if err != nil {
			return 0, err
		}
		for i := range options {
			if raw == fmt.Sprintf("%d", i+1) {
				return i, nil
			}
		}
		a.printf("Please enter a number between 1 and %d.\n", len(options))
	}
}

// currentUser returns the session user, bouncing to login if the session
// evaporated underneath the screen.
func (a *App) currentUser() (*model.User, bool) {
	user := a.store.User()
	if user == nil {
		a.router.ForceLogin()
		return nil, false
	}
	return user, true
}

// guard enforces a screen's allow-list before it renders.
func (a *App) guard(allowed ...string) (*model.User, bool) {
	user, ok := a.currentUser()
	if !ok {
		return nil, false
	}
	if !nav.HasRole(user.Role, allowed...) {
		a.printf("You do not have access to this screen.\n")
		a.router.Navigate(nav.ScreenDashboard)
		return nil, false
	}
	return user, true
}

// scopeFilters narrows report queries to the admin's own level. Soul
// winners and super admins see the unfiltered numbers.
func scopeFilters(user *model.User) map[string]string {
	switch model.NormalizeRole(user.Role) {
	case model.RoleParishAdmin:
		return map[string]string{"parishId": user.ParishID}
	case model.RoleAreaAdmin:
		return map[string]string{"areaId": user.AreaID}
	case model.RoleZonalAdmin:
		return map[string]string{"zonalId": user.ZonalID}
	}
	return nil
}

// waitForScreenChange polls until the router leaves the given screen or ctx
// is canceled. Used by splash, where the transition is timer driven.
func (a *App) waitForScreenChange(ctx context.Context, from nav.Screen) error {
	for a.router.Current() == from {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return nil
}
