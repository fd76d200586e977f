package ui

import (
	"context"
	"time"

	"followup_tracker/internal/model"
	"followup_tracker/internal/nav"
)

// verses rotate on the splash and dashboard headers, one per day.
var verses = []string{
	`"He that winneth souls is wise." - Proverbs 11:30`,
	`"Go ye into all the world, and preach the gospel." - Mark 16:15`,
	`"Feed my lambs." - John 21:15`,
	`"I have planted, Apollos watered; but God gave the increase." - 1 Corinthians 3:6`,
	`"Let us not be weary in well doing." - Galatians 6:9`,
}

func verseOfDay() string {
	return verses[time.Now().YearDay()%len(verses)]
}

func (a *App) dashboardScreen(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	var stats *model.DashboardStats
	var pending []model.PendingFollowUp
	callErr := a.withLoading(func() error {
		var err error
		stats, err = a.dashboard.Stats(ctx, scopeFilters(user))
		if err != nil {
			return err
		}
		pending, err = a.dashboard.PendingFollowUps(ctx, scopeFilters(user))
		return err
	})

	a.printf("\n== Dashboard ==\n%s\n\n", verseOfDay())
	if callErr != nil {
		a.printf("Could not load dashboard: %v\n", callErr)
	} else {
		a.printf("Total converts:     %d\n", stats.TotalConverts)
		a.printf("Active converts:    %d\n", stats.ActiveConverts)
		a.printf("Completed journeys: %d\n", stats.CompletedConverts)
		if stats.RetentionRate != "" {
			a.printf("Retention rate:     %s\n", stats.RetentionRate)
		}
		if len(pending) > 0 {
			a.printf("\nPending follow-ups:\n")
			for _, p := range pending {
				a.printf("  %s (visit %d, due %s)\n", p.Name, p.VisitNumber, p.DueDate)
			}
		}
	}

	options := []string{"Converts", "Add convert", "Reports", "Profile", "Notifications"}
	targets := []nav.Screen{nav.ScreenConvertsList, nav.ScreenAddConvert, nav.ScreenReports, nav.ScreenProfile, ""}

	if nav.HasRole(user.Role, model.RoleParishAdmin) {
		options = append(options, "Parish admin")
		targets = append(targets, nav.ScreenParishAdmin)
	}
	if nav.HasRole(user.Role, model.RoleAreaAdmin) {
		options = append(options, "Area admin")
		targets = append(targets, nav.ScreenAreaAdmin)
	}
	if nav.HasRole(user.Role, model.RoleZonalAdmin) {
		options = append(options, "Zonal admin")
		targets = append(targets, nav.ScreenZonalAdmin)
	}
	if nav.HasRole(user.Role, model.RoleSuperAdmin) {
		options = append(options, "User management")
		targets = append(targets, nav.ScreenUserManagement)
	}
	options = append(options, "Log out", "Quit")
	targets = append(targets, "", "")

	choice, err := a.promptChoice("Go to", options)
	if err != nil {
		return err
	}
	switch options[choice] {
	case "Notifications":
		a.showNotifications(ctx)
	case "Log out":
		a.router.Logout(ctx)
	case "Quit":
		return errQuit
	default:
		a.router.Navigate(targets[choice])
	}
	return nil
}

// showNotifications renders the notification list inline and stays on the
// dashboard.
func (a *App) showNotifications(ctx context.Context) {
	var notifications []model.Notification
	callErr := a.withLoading(func() error {
		var err error
		notifications, err = a.users.Notifications(ctx)
		return err
	})
	if callErr != nil {
		a.printf("Could not load notifications: %v\n", callErr)
		return
	}
	if len(notifications) == 0 {
		a.printf("No notifications.\n")
		return
	}
	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		a.printf("%s %s - %s\n", marker, n.Title, n.Message)
	}
}

func (a *App) reportsScreen(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	var stats *model.DashboardStats
	var trends []model.TrendPoint
	callErr := a.withLoading(func() error {
		var err error
		stats, err = a.dashboard.Stats(ctx, scopeFilters(user))
		if err != nil {
			return err
		}
		trends, err = a.dashboard.Trends(ctx, scopeFilters(user))
		return err
	})

	a.printf("\n== Reports ==\n")
	if callErr != nil {
		a.printf("Could not load reports: %v\n", callErr)
	} else {
		a.printf("Total: %d  Active: %d  Completed: %d\n",
			stats.TotalConverts, stats.ActiveConverts, stats.CompletedConverts)
		for _, point := range trends {
			a.printf("  %-12s %d\n", point.Period, point.Converts)
		}
	}

	choice, err := a.promptChoice("Choose", []string{"Detailed report", "Back to dashboard"})
	if err != nil {
		return err
	}
	if choice == 0 {
		a.router.Navigate(nav.ScreenDetailedReport)
	} else {
		a.router.Navigate(nav.ScreenDashboard)
	}
	return nil
}

func (a *App) detailedReportScreen(ctx context.Context) error {
	user, ok := a.currentUser()
	if !ok {
		return nil
	}

	var trends []model.TrendPoint
	var pending []model.PendingFollowUp
	callErr := a.withLoading(func() error {
		var err error
		trends, err = a.dashboard.Trends(ctx, scopeFilters(user))
		if err != nil {
			return err
		}
		pending, err = a.dashboard.PendingFollowUps(ctx, scopeFilters(user))
		return err
	})

	a.printf("\n== Detailed Report ==\n")
	if callErr != nil {
		a.printf("Could not load report: %v\n", callErr)
	} else {
		a.printf("Growth trend:\n")
		for _, point := range trends {
			a.printf("  %-12s %d\n", point.Period, point.Converts)
		}
		a.printf("\nOverdue follow-ups (%d):\n", len(pending))
		for _, p := range pending {
			a.printf("  %s visit %d due %s\n", p.Name, p.VisitNumber, p.DueDate)
		}
	}

	if _, err := a.prompt("Press enter to go back"); err != nil {
		return err
	}
	a.router.Navigate(nav.ScreenReports)
	return nil
}
