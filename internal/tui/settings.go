package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/devanshm/tiffin/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	reminderEnabled *bool
	reminderTime    *string
	skipWeekends    *bool
	reminderDays    *string
	pricePerTiffin  *string
	weekStart       *string
}

func newSettingsModel(s *store.Store) settingsModel {
	enabled, skip := false, true
	rt, rd, price, ws := "", "", "", ""
	return settingsModel{
		store:           s,
		reminderEnabled: &enabled,
		reminderTime:    &rt,
		skipWeekends:    &skip,
		reminderDays:    &rd,
		pricePerTiffin:  &price,
		weekStart:       &ws,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings []store.Setting
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	ns := s.store.GetNotificationSettings()
	*s.reminderEnabled = ns.Enabled
	*s.reminderTime = ns.ReminderTime
	*s.skipWeekends = ns.SkipWeekends
	*s.reminderDays = strconv.Itoa(ns.ReminderDays)
	*s.pricePerTiffin = s.store.DefaultPrice().String()
	if s.store.WeekStart() == time.Sunday {
		*s.weekStart = "sunday"
	} else {
		*s.weekStart = "monday"
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Daily reminder").Value(s.reminderEnabled),
			huh.NewInput().Title("Reminder time (HH:MM)").Value(s.reminderTime).Validate(validateClock),
			huh.NewConfirm().Title("Skip weekends").Value(s.skipWeekends),
			huh.NewInput().Title("Remind days ahead").Value(s.reminderDays).Validate(validateNonNegativeInt),
		).Title("Reminders"),
		huh.NewGroup(
			huh.NewInput().Title("Price per tiffin").Value(s.pricePerTiffin).Validate(validateAmount),
			huh.NewSelect[string]().Title("Week starts on").
				Options(
					huh.NewOption("Monday", "monday"),
					huh.NewOption("Sunday", "sunday"),
				).Value(s.weekStart),
		).Title("General"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s, s.saveSettings()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() tea.Cmd {
	days, _ := strconv.Atoi(*s.reminderDays)
	ns := store.NotificationSettings{
		Enabled:      *s.reminderEnabled,
		ReminderTime: *s.reminderTime,
		SkipWeekends: *s.skipWeekends,
		ReminderDays: days,
	}
	price := *s.pricePerTiffin
	weekStart := *s.weekStart

	return func() tea.Msg {
		if err := s.store.SaveNotificationSettings(ns); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		if err := s.store.SetSetting("price_per_tiffin", price); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		if err := s.store.SetSetting("week_start", weekStart); err != nil {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
		return settingsSavedMsg{}
	}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(24).Render(setting.Key)
		value := highlightStyle.Render(formatSettingValue(setting.Key, setting.Value))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case "reminder_enabled", "skip_weekends":
		if v == "1" {
			return "yes"
		}
		return "no"
	case "price_per_tiffin":
		return "₹" + v
	}
	return v
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM, e.g. 09:00")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be zero or more")
	}
	return nil
}
