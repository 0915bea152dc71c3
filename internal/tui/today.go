package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/devanshm/tiffin/internal/remind"
	"github.com/devanshm/tiffin/internal/store"
)

// todayModel is the order entry screen: pick a date, pick a tiffin count,
// confirm. It also shows the selected day's tracker status and a hint when
// the user usually orders on this weekday.
type todayModel struct {
	store  *store.Store
	width  int
	height int

	selectedDate string
	tiffins      int
	price        decimal.Decimal

	existing  *store.Order
	dayStatus *store.TiffinStatus
	usualDay  bool
}

func newTodayModel(s *store.Store) todayModel {
	return todayModel{
		store:        s,
		selectedDate: todayStr(),
		tiffins:      1,
		price:        decimal.NewFromInt(60),
	}
}

func (t todayModel) Init() tea.Cmd {
	return t.loadData()
}

func (t *todayModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

type todayDataMsg struct {
	existing  *store.Order
	dayStatus *store.TiffinStatus
	price     decimal.Decimal
	usualDay  bool
}

func (t todayModel) loadData() tea.Cmd {
	date := t.selectedDate
	return func() tea.Msg {
		var existing *store.Order
		if orders, err := t.store.ListOrdersByDate(date); err == nil && len(orders) > 0 {
			existing = &orders[0]
		}
		dayStatus, _ := t.store.GetStatus(date)

		usual := false
		if date == todayStr() {
			history, _ := t.store.ListStatusHistory()
			usual = remind.ShouldRemind(time.Now(), history)
		}

		return todayDataMsg{
			existing:  existing,
			dayStatus: dayStatus,
			price:     t.store.DefaultPrice(),
			usualDay:  usual,
		}
	}
}

func (t todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todayDataMsg:
		t.existing = msg.existing
		t.dayStatus = msg.dayStatus
		t.price = msg.price
		t.usualDay = msg.usualDay
		if t.existing != nil {
			t.tiffins = t.existing.NumberOfTiffins
		} else {
			t.tiffins = 1
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			t.selectedDate = shiftDate(t.selectedDate, -1)
			return t, t.loadData()
		case key.Matches(msg, keys.Right):
			t.selectedDate = shiftDate(t.selectedDate, 1)
			return t, t.loadData()
		case key.Matches(msg, keys.Up):
			t.tiffins++
			return t, nil
		case key.Matches(msg, keys.Down):
			if t.tiffins > 1 {
				t.tiffins--
			}
			return t, nil
		case key.Matches(msg, keys.Order):
			return t, t.placeOrder()
		case key.Matches(msg, keys.Skip):
			return t, t.skipDay()
		}
	}
	return t, nil
}

// placeOrder upserts the ledger for the selected date and mirrors the
// order into the status tracker.
func (t todayModel) placeOrder() tea.Cmd {
	date, tiffins, price := t.selectedDate, t.tiffins, t.price
	return func() tea.Msg {
		order, err := t.store.AddOrder(store.OrderInput{
			Date:            date,
			NumberOfTiffins: tiffins,
			PricePerTiffin:  price,
		})
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Order error: %v", err), isError: true}
		}
		if err := t.store.SetStatus(date, store.StatusOrdered, &order.NumberOfTiffins, &order.TotalAmount); err != nil {
			return statusMsg{text: fmt.Sprintf("Status error: %v", err), isError: true}
		}
		return orderSavedMsg{order: order}
	}
}

func (t todayModel) skipDay() tea.Cmd {
	date := t.selectedDate
	return func() tea.Msg {
		if err := t.store.SetStatus(date, store.StatusSkipped, nil, nil); err != nil {
			return statusMsg{text: fmt.Sprintf("Status error: %v", err), isError: true}
		}
		return daySkippedMsg{date: date}
	}
}

func (t todayModel) view() string {
	if t.width < 20 {
		return "Terminal too small"
	}
	w := t.width - 4

	datePanel := t.renderDatePanel(w)
	orderPanel := t.renderOrderPanel(w)
	statusPanel := t.renderStatusPanel(w)

	return lipgloss.JoinVertical(lipgloss.Left, datePanel, orderPanel, statusPanel)
}

func (t todayModel) renderDatePanel(w int) string {
	d, err := time.Parse(dateLayout, t.selectedDate)
	label := t.selectedDate
	if err == nil {
		label = d.Format("Monday, Jan 2 2006")
	}

	line := titleStyle.Render(label)
	if t.selectedDate == todayStr() {
		line += successStyle.Render("  (today)")
	}
	nav := mutedStyle.Render("←/→ change day")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, line, nav),
	)
}

func (t todayModel) renderOrderPanel(w int) string {
	total := t.price.Mul(decimal.NewFromInt(int64(t.tiffins)))

	counter := counterStyle.Width(w - 6).Render(fmt.Sprintf("%d", t.tiffins))
	unit := mutedStyle.Width(w - 6).Align(lipgloss.Center).Render("tiffins")
	priceLine := fmt.Sprintf("%s × %d = %s",
		formatAmount(t.price), t.tiffins, highlightStyle.Render(formatAmount(total)))

	var existingLine string
	if t.existing != nil {
		existingLine = warningStyle.Render(fmt.Sprintf(
			"Replaces existing order: %d tiffins, %s",
			t.existing.NumberOfTiffins, formatAmount(t.existing.TotalAmount)))
	} else {
		existingLine = mutedStyle.Render("No order for this day yet")
	}

	controls := mutedStyle.Render("↑/↓ adjust  enter: order  x: skip")

	return activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Center, counter, unit, "", priceLine, existingLine, "", controls),
	)
}

func (t todayModel) renderStatusPanel(w int) string {
	var line string
	if t.dayStatus == nil {
		line = mutedStyle.Render("…")
	} else {
		switch t.dayStatus.Status {
		case store.StatusOrdered:
			detail := ""
			if t.dayStatus.NumberOfTiffins != nil && t.dayStatus.TotalAmount != nil {
				detail = fmt.Sprintf(" — %d tiffins, %s",
					*t.dayStatus.NumberOfTiffins, formatAmount(*t.dayStatus.TotalAmount))
			}
			line = successStyle.Render("✓ Ordered" + detail)
		case store.StatusSkipped:
			line = errorStyle.Render("✗ Skipped")
		default:
			line = warningStyle.Render("● Pending")
		}
	}

	rows := []string{titleStyle.Render("Day status"), line}
	if t.usualDay {
		rows = append(rows, highlightStyle.Render("You usually order on this weekday."))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
