package ui

import (
	"context"
	"strconv"
	"strings"

	"followup_tracker/internal/model"
	"followup_tracker/internal/nav"
)

// adminScreen renders the parish, area and zonal admin dashboards, which
// differ only in the role they require and the filter they scope by.
func (a *App) adminScreen(ctx context.Context, level, requiredRole, filterKey string) error {
	user, ok := a.guard(requiredRole)
	if !ok {
		return nil
	}

	// Empty placement ids (a super admin visiting the screen) are dropped
	// by the service, which leaves the numbers unfiltered.
	filters := map[string]string{}
	switch filterKey {
	case "parishId":
		filters[filterKey] = user.ParishID
	case "areaId":
		filters[filterKey] = user.AreaID
	case "zonalId":
		filters[filterKey] = user.ZonalID
	}

	var stats *model.DashboardStats
	var pending []model.PendingFollowUp
	callErr := a.withLoading(func() error {
		var err error
		stats, err = a.dashboard.Stats(ctx, filters)
		if err != nil {
			return err
		}
		pending, err = a.dashboard.PendingFollowUps(ctx, filters)
		return err
	})

	a.printf("\n== %s Admin ==\n", level)
	if callErr != nil {
		a.printf("Could not load %s overview: %v\n", strings.ToLower(level), callErr)
	} else {
		a.printf("Total: %d  Active: %d  Completed: %d\n",
			stats.TotalConverts, stats.ActiveConverts, stats.CompletedConverts)
		a.printf("Overdue follow-ups: %d\n", len(pending))
		for _, p := range pending {
			a.printf("  %s visit %d due %s\n", p.Name, p.VisitNumber, p.DueDate)
		}
	}

	if _, err := a.prompt("Press enter to go back"); err != nil {
		return err
	}
	a.router.Navigate(nav.ScreenDashboard)
	return nil
}

func (a *App) userManagementScreen(ctx context.Context) error {
	if _, ok := a.guard(model.RoleSuperAdmin); !ok {
		return nil
	}

	var users []model.User
	callErr := a.withLoading(func() error {
		var err error
		users, err = a.users.AllUsers(ctx)
		return err
	})
	if callErr != nil {
		a.printf("Could not load users: %v\n", callErr)
		a.router.Navigate(nav.ScreenDashboard)
		return nil
	}

	for {
		a.printf("\n== User Management ==\n")
		for i, u := range users {
			status := "pending"
			if u.IsValidated {
				status = "validated"
			}
			a.printf("  %d) %-24s %-14s %s\n", i+1, u.Name, model.NormalizeRole(u.Role), status)
		}
		a.printf("Commands: t <n> toggle validation, b back\n")

		raw, err := a.prompt(">")
		if err != nil {
			return err
		}
		if raw == "b" {
			a.router.Navigate(nav.ScreenDashboard)
			return nil
		}
		if !strings.HasPrefix(raw, "t ") {
			a.printf("Unknown command.\n")
			continue
		}
		idx, convErr := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(raw, "t ")))
		if convErr != nil || idx < 1 || idx > len(users) {
			a.printf("No such user.\n")
			continue
		}

		target := &users[idx-1]
		toggleErr := a.withLoading(func() error {
			return a.users.SetUserValidation(ctx, target.ID, !target.IsValidated)
		})
		if toggleErr != nil {
			a.printf("Could not update %s: %v\n", target.Name, toggleErr)
			continue
		}
		target.IsValidated = !target.IsValidated
	}
}
