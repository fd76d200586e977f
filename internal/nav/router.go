// Package nav holds the navigation state machine: one authoritative
// current-screen value, a single transition function, and the role-based
// presentation guard. Screens render from (current screen, selected id,
// user); nothing else decides what is shown.
package nav

import (
	"context"
	"log"
	"sync"
	"time"

	"followup_tracker/internal/session"
)

// Screen names every state of the navigation machine.
type Screen string

const (
	ScreenSplash               Screen = "splash"
	ScreenLogin                Screen = "login"
	ScreenSignup               Screen = "signup"
	ScreenForgotPassword       Screen = "forgot-password"
	ScreenResetPassword        Screen = "reset-password"
	ScreenDashboard            Screen = "dashboard"
	ScreenAddConvert           Screen = "add-convert"
	ScreenConvertsList         Screen = "converts-list"
	ScreenConvertDetails       Screen = "convert-details"
	ScreenEditConvert          Screen = "edit-convert"
	ScreenReports              Screen = "reports"
	ScreenDetailedReport       Screen = "detailed-report"
	ScreenParishAdmin          Screen = "parish-admin"
	ScreenAreaAdmin            Screen = "area-admin"
	ScreenZonalAdmin           Screen = "zonal-admin"
	ScreenProfile              Screen = "profile"
	ScreenEditProfile          Screen = "edit-profile"
	ScreenChangePassword       Screen = "change-password"
	ScreenNotificationSettings Screen = "notification-settings"
	ScreenUserManagement       Screen = "user-management"
)

// Router is the single-page navigation state machine. All mutation happens
// through Start, Navigate, Logout and ForceLogin; the Router itself never
// panics on any input.
type Router struct {
	store       *session.Store
	splashDelay time.Duration

	mu            sync.Mutex
	current       Screen
	selectedID    string
	splashVisible bool
	resetToken    string
}

// NewRouter creates a router in the initial splash state.
func NewRouter(store *session.Store, splashDelay time.Duration) *Router {
	return &Router{
		store:         store,
		splashDelay:   splashDelay,
		current:       ScreenSplash,
		splashVisible: true,
	}
}

// Start runs the startup transition. A reset token (from the launch URL or
// command line) routes straight to the reset-password screen, bypassing
// splash. Otherwise the session store hydrates: success lands on the
// dashboard; failure holds the splash screen for the configured delay and
// then falls through to login. The splash timer is canceled by ctx and is
// a no-op if navigation has already moved on.
func (r *Router) Start(ctx context.Context, resetToken string) {
	if resetToken != "" {
		r.mu.Lock()
		r.current = ScreenResetPassword
		r.resetToken = resetToken
		r.splashVisible = false
		r.mu.Unlock()
		return
	}

	if user, err := r.store.Hydrate(ctx); err == nil {
		log.Printf("INFO: session restored for %s", user.Email)
		r.mu.Lock()
		r.current = ScreenDashboard
		r.splashVisible = false
		r.mu.Unlock()
		return
	}

	go func() {
		select {
		case <-time.After(r.splashDelay):
			r.mu.Lock()
			// Only fall through if nothing else navigated meanwhile.
			if r.current == ScreenSplash {
				r.current = ScreenLogin
				r.splashVisible = false
			}
			r.mu.Unlock()
		case <-ctx.Done():
		}
	}()
}

// Navigate unconditionally sets the current screen. A supplied id
// overwrites the selected entity id; with no id the previous value is kept,
// so screens that need an entity must always pass theirs explicitly rather
// than trusting what a prior navigation left behind.
//
// Navigating to login consumes any pending reset token, mirroring the web
// client stripping the token from the address bar.
func (r *Router) Navigate(screen Screen, id ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = screen
	r.splashVisible = false
	if len(id) > 0 && id[0] != "" {
		r.selectedID = id[0]
	}
	if screen == ScreenLogin {
		r.resetToken = ""
	}
}

// Logout clears the session and returns to the login screen from anywhere.
func (r *Router) Logout(ctx context.Context) {
	if err := r.store.Clear(ctx); err != nil {
		log.Printf("ERROR: failed to clear session on logout: %v", err)
	}
	r.Navigate(ScreenLogin)
}

// ForceLogin resets navigation to the login screen without touching the
// store; the gateway has already cleared it when a 401 lands here.
func (r *Router) ForceLogin() {
	r.Navigate(ScreenLogin)
}

// Current returns the authoritative current screen.
func (r *Router) Current() Screen {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// SelectedID returns the last explicitly selected entity id.
func (r *Router) SelectedID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selectedID
}

// SplashVisible reports whether the splash screen is still showing.
func (r *Router) SplashVisible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.splashVisible
}

// ResetToken returns the token captured at startup for the reset-password
// screen, empty once consumed.
func (r *Router) ResetToken() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetToken
}
