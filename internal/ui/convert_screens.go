package ui

import (
	"context"
	"strconv"
	"strings"

	"followup_tracker/internal/model"
	"followup_tracker/internal/nav"
	"followup_tracker/internal/normalize"
	"followup_tracker/internal/utils"
)

func (a *App) convertsListScreen(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}

	<-a.searcher.Submit(ctx, "")
	query, results, searchErr := a.searcher.Results()

	for {
		a.printf("\n== Converts ==\n")
		if query != "" {
			a.printf("Search: %q\n", query)
		}
		if searchErr != nil {
			a.printf("Could not load converts: %v\n", searchErr)
		} else if len(results) == 0 {
			a.printf("No converts found.\n")
		}
		for i, c := range results {
			a.printf("  %d) %-24s %d/%d visits\n",
				i+1, c.Name, normalize.CompletedVisitCount(&c), model.TotalFollowUpVisits)
		}
		a.printf("Commands: <number> open, s <text> search, a add, b back\n")

		raw, err := a.prompt(">")
		if err != nil {
			a.searcher.Reset()
			return err
		}

		switch {
		case raw == "b":
			a.searcher.Reset()
			a.router.Navigate(nav.ScreenDashboard)
			return nil
		case raw == "a":
			a.searcher.Reset()
			a.router.Navigate(nav.ScreenAddConvert)
			return nil
		case strings.HasPrefix(raw, "s ") || raw == "s":
			<-a.searcher.Submit(ctx, strings.TrimSpace(strings.TrimPrefix(raw, "s")))
			query, results, searchErr = a.searcher.Results()
		default:
			idx, convErr := strconv.Atoi(raw)
			if convErr != nil || idx < 1 || idx > len(results) {
				a.printf("Unknown command.\n")
				continue
			}
			a.searcher.Reset()
			a.router.Navigate(nav.ScreenConvertDetails, results[idx-1].ID)
			return nil
		}
	}
}

func (a *App) convertDetailsScreen(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}
	id := a.router.SelectedID()
	if id == "" {
		a.router.Navigate(nav.ScreenConvertsList)
		return nil
	}

	var convert *model.Convert
	callErr := a.withLoading(func() error {
		var err error
		convert, err = a.converts.Get(ctx, id)
		return err
	})
	if callErr != nil {
		a.printf("Could not load convert: %v\n", callErr)
		a.router.Navigate(nav.ScreenConvertsList)
		return nil
	}

	a.printf("\n== %s ==\n", convert.Name)
	a.printf("Phone: %s  Address: %s\n", convert.Phone, convert.HouseAddress)
	a.printf("Born again: %s  Age group: %s  Gender: %s\n",
		convert.DateBornAgain, convert.AgeGroup, convert.Gender)

	a.printf("\nFollow-up visits:\n")
	for n := 1; n <= model.TotalFollowUpVisits; n++ {
		mark := " "
		if normalize.VisitCompleted(convert, n) {
			mark = "x"
		}
		a.printf("  [%s] %d. %s\n", mark, n, model.VisitTitles[n-1])
	}

	a.printf("\nSpiritual growth:\n")
	for _, key := range []string{model.MilestoneBelieverClass, model.MilestoneWaterBaptism, model.MilestoneWorkersTraining} {
		a.printf("  %-16s %s\n", key, normalize.MilestoneStatus(convert.Growth, key))
	}

	a.printf("\nCommands: v <n> toggle visit, m update milestone, e edit, b back\n")
	raw, err := a.prompt(">")
	if err != nil {
		return err
	}

	switch {
	case raw == "b":
		a.router.Navigate(nav.ScreenConvertsList)
	case raw == "e":
		a.router.Navigate(nav.ScreenEditConvert, convert.ID)
	case raw == "m":
		return a.updateMilestone(ctx, convert.ID)
	case strings.HasPrefix(raw, "v "):
		n, convErr := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(raw, "v ")))
		if convErr != nil || n < 1 || n > model.TotalFollowUpVisits {
			a.printf("Visit number must be between 1 and %d.\n", model.TotalFollowUpVisits)
			return nil
		}
		toggleErr := a.withLoading(func() error {
			return a.converts.ToggleVisit(ctx, convert.ID, n)
		})
		if toggleErr != nil {
			a.printf("Could not update visit: %v\n", toggleErr)
		}
		// Stay on the screen; the next render refetches the server's state.
	default:
		a.printf("Unknown command.\n")
	}
	return nil
}

func (a *App) updateMilestone(ctx context.Context, convertID string) error {
	keys := []string{model.MilestoneBelieverClass, model.MilestoneWaterBaptism, model.MilestoneWorkersTraining}
	keyIdx, err := a.promptChoice("Milestone", []string{"Believer class", "Water baptism", "Workers training"})
	if err != nil {
		return err
	}
	statuses := []string{model.MilestoneNotStarted, model.MilestoneInProgress, model.MilestoneCompleted}
	statusIdx, err := a.promptChoice("Status", []string{"Not started", "In progress", "Completed"})
	if err != nil {
		return err
	}

	update := model.MilestoneUpdate{keys[keyIdx]: statuses[statusIdx]}
	callErr := a.withLoading(func() error {
		return a.converts.UpdateMilestones(ctx, convertID, update)
	})
	if callErr != nil {
		a.printf("Could not update milestone: %v\n", callErr)
	}
	return nil
}

func (a *App) addConvertScreen(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}

	a.printf("\n== Add Convert ==\n")
	convert, err := a.promptConvertForm(model.Convert{})
	if err != nil {
		return err
	}
	if convert == nil {
		a.router.Navigate(nav.ScreenConvertsList)
		return nil
	}

	var created *model.Convert
	callErr := a.withLoading(func() error {
		var err error
		created, err = a.converts.Create(ctx, *convert)
		return err
	})
	if callErr != nil {
		a.printf("Could not save convert: %v\n", callErr)
		return nil
	}

	a.printf("Saved %s.\n", created.Name)
	if created.ID != "" {
		a.router.Navigate(nav.ScreenConvertDetails, created.ID)
	} else {
		a.router.Navigate(nav.ScreenConvertsList)
	}
	return nil
}

func (a *App) editConvertScreen(ctx context.Context) error {
	if _, ok := a.currentUser(); !ok {
		return nil
	}
	id := a.router.SelectedID()
	if id == "" {
		a.router.Navigate(nav.ScreenConvertsList)
		return nil
	}

	var existing *model.Convert
	callErr := a.withLoading(func() error {
		var err error
		existing, err = a.converts.Get(ctx, id)
		return err
	})
	if callErr != nil {
		a.printf("Could not load convert: %v\n", callErr)
		a.router.Navigate(nav.ScreenConvertsList)
		return nil
	}

	a.printf("\n== Edit %s ==\n(press enter to keep the current value)\n", existing.Name)
	updated, err := a.promptConvertForm(*existing)
	if err != nil {
		return err
	}
	if updated == nil {
		a.router.Navigate(nav.ScreenConvertDetails, id)
		return nil
	}

	callErr = a.withLoading(func() error {
		_, err := a.converts.Update(ctx, id, *updated)
		return err
	})
	if callErr != nil {
		a.printf("Could not save changes: %v\n", callErr)
		return nil
	}

	a.printf("Changes saved.\n")
	a.router.Navigate(nav.ScreenConvertDetails, id)
	return nil
}

// promptConvertForm collects the convert's fields, pre-filled from current.
// It returns nil (and no error) when validation fails so the caller can
// bounce back without saving.
func (a *App) promptConvertForm(current model.Convert) (*model.Convert, error) {
	var err error
	if current.Name, err = a.promptDefault("Name", current.Name); err != nil {
		return nil, err
	}
	if current.Phone, err = a.promptDefault("Phone", current.Phone); err != nil {
		return nil, err
	}
	if current.Whatsapp, err = a.promptDefault("WhatsApp", current.Whatsapp); err != nil {
		return nil, err
	}
	if current.HouseAddress, err = a.promptDefault("House address", current.HouseAddress); err != nil {
		return nil, err
	}
	if current.DateBornAgain, err = a.promptDefault("Date born again", current.DateBornAgain); err != nil {
		return nil, err
	}
	if current.AgeGroup, err = a.promptDefault("Age group", current.AgeGroup); err != nil {
		return nil, err
	}
	if current.Gender, err = a.promptDefault("Gender", current.Gender); err != nil {
		return nil, err
	}
	if current.MaritalStatus, err = a.promptDefault("Marital status", current.MaritalStatus); err != nil {
		return nil, err
	}
	if current.Career, err = a.promptDefault("Career", current.Career); err != nil {
		return nil, err
	}

	required := map[string]string{"name": current.Name, "phone": current.Phone}
	if err := utils.RequireFields(required, "name", "phone"); err != nil {
		a.printf("%v\n", err)
		return nil, nil
	}
	return &current, nil
}
