package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/devanshm/tiffin/internal/stats"
	"github.com/devanshm/tiffin/internal/store"
)

type historyModel struct {
	store  *store.Store
	width  int
	height int

	month  string // YYYY-MM
	orders []store.Order
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTiffins *string
	formPrice   *string

	editingID string
}

func newHistoryModel(s *store.Store) historyModel {
	tiffins, price := "", ""
	return historyModel{
		store:       s,
		month:       time.Now().Format("2006-01"),
		formTiffins: &tiffins,
		formPrice:   &price,
	}
}

func (h *historyModel) setSize(w, hh int) {
	h.width = w
	h.height = hh
}

type historyDataMsg struct {
	orders []store.Order
}

func (h historyModel) refresh() tea.Cmd {
	month := h.month
	return func() tea.Msg {
		orders, _ := h.store.ListOrdersByMonth(month)
		return historyDataMsg{orders: orders}
	}
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	if h.formActive && h.form != nil {
		return h.updateForm(msg)
	}

	switch msg := msg.(type) {
	case historyDataMsg:
		h.orders = msg.orders
		if h.cursor >= len(h.orders) {
			h.cursor = max(0, len(h.orders)-1)
		}
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
		case key.Matches(msg, keys.Down):
			if h.cursor < len(h.orders)-1 {
				h.cursor++
			}
		case key.Matches(msg, keys.Left):
			h.month = shiftMonth(h.month, -1)
			h.cursor = 0
			return h, h.refresh()
		case key.Matches(msg, keys.Right):
			h.month = shiftMonth(h.month, 1)
			h.cursor = 0
			return h, h.refresh()
		case key.Matches(msg, keys.Enter):
			if len(h.orders) > 0 {
				return h.showEditForm()
			}
		case key.Matches(msg, keys.Delete):
			if len(h.orders) > 0 {
				return h, h.deleteOrder(h.orders[h.cursor])
			}
		}
	}
	return h, nil
}

func (h historyModel) deleteOrder(o store.Order) tea.Cmd {
	return func() tea.Msg {
		if err := h.store.RemoveOrder(o.ID); err != nil {
			return statusMsg{text: fmt.Sprintf("Delete error: %v", err), isError: true}
		}
		if err := h.store.ClearStatus(o.Date); err != nil {
			return statusMsg{text: fmt.Sprintf("Status error: %v", err), isError: true}
		}
		return orderDeletedMsg{date: o.Date}
	}
}

func (h historyModel) showEditForm() (historyModel, tea.Cmd) {
	o := h.orders[h.cursor]
	*h.formTiffins = strconv.Itoa(o.NumberOfTiffins)
	*h.formPrice = o.PricePerTiffin.String()
	h.editingID = o.ID

	h.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Tiffins").Value(h.formTiffins).Validate(validatePositiveInt),
			huh.NewInput().Title("Price per tiffin").Value(h.formPrice).Validate(validateAmount),
		),
	).WithShowHelp(true).WithShowErrors(true)

	h.formActive = true
	return h, h.form.Init()
}

func (h historyModel) updateForm(msg tea.Msg) (historyModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			h.formActive = false
			h.form = nil
			return h, nil
		}
	}

	form, cmd := h.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		h.form = f
	}

	if h.form.State == huh.StateCompleted {
		h.formActive = false
		tiffins, _ := strconv.Atoi(*h.formTiffins)
		price, _ := decimal.NewFromString(*h.formPrice)
		return h, h.applyEdit(h.editingID, tiffins, price)
	}

	return h, cmd
}

func (h historyModel) applyEdit(id string, tiffins int, price decimal.Decimal) tea.Cmd {
	return func() tea.Msg {
		order, err := h.store.UpdateOrder(id, tiffins, price)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Update error: %v", err), isError: true}
		}
		if order == nil {
			// Edited a row that vanished underneath us; nothing to do.
			return statusMsg{text: "Order no longer exists"}
		}
		if err := h.store.SetStatus(order.Date, store.StatusOrdered, &order.NumberOfTiffins, &order.TotalAmount); err != nil {
			return statusMsg{text: fmt.Sprintf("Status error: %v", err), isError: true}
		}
		return orderSavedMsg{order: order}
	}
}

func (h historyModel) view() string {
	w := h.width - 4

	if h.formActive && h.form != nil {
		title := titleStyle.Render("Edit Order")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", h.form.View())
		return panelStyle.Width(w).Render(content)
	}

	m, err := time.Parse("2006-01", h.month)
	monthLabel := h.month
	if err == nil {
		monthLabel = m.Format("January 2006")
	}
	title := titleStyle.Render("History — " + monthLabel)

	if len(h.orders) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No orders this month."),
			"",
			mutedStyle.Render("  ←/→: month  esc: back"),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-12s %8s %12s %12s", "Date", "Tiffins", "Price", "Total"))
	rows = append(rows, header)

	for i, o := range h.orders {
		cursor := "  "
		style := normalItemStyle
		if i == h.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-12s %8d %12s %12s",
			cursor, o.Date, o.NumberOfTiffins,
			formatAmount(o.PricePerTiffin), formatAmount(o.TotalAmount))))
	}

	totals := stats.ForMonth(h.orders, h.month)
	rows = append(rows, "")
	rows = append(rows, highlightStyle.Render(fmt.Sprintf(
		"  %d orders, %d tiffins, %s total", totals.Orders, totals.Tiffins, formatAmount(totals.Amount))))

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  ←/→: month  enter: edit  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return fmt.Errorf("must be a non-negative amount")
	}
	return nil
}
