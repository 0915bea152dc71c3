package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devanshm/tiffin/internal/stats"
	"github.com/devanshm/tiffin/internal/store"
)

type reportsModel struct {
	store  *store.Store
	width  int
	height int

	month     string // YYYY-MM being charted
	orders    []store.Order
	weekStart time.Weekday

	chart barchart.Model
}

func newReportsModel(s *store.Store) reportsModel {
	return reportsModel{
		store:     s,
		month:     time.Now().Format("2006-01"),
		weekStart: time.Monday,
		chart:     barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	orders    []store.Order
	weekStart time.Weekday
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		orders, _ := r.store.ListOrders()
		return reportsDataMsg{orders: orders, weekStart: r.store.WeekStart()}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.orders = msg.orders
		r.weekStart = msg.weekStart
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.month = shiftMonth(r.month, -1)
			r.buildChart()
			return r, nil
		case key.Matches(msg, keys.Right):
			r.month = shiftMonth(r.month, 1)
			r.buildChart()
			return r, nil
		}
	}
	return r, nil
}

// buildChart draws one bar per day of the visible month, sized by that
// day's spend.
func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	first, err := time.Parse("2006-01", r.month)
	if err != nil {
		return
	}
	next := first.AddDate(0, 1, 0)

	barStyle := lipgloss.NewStyle().Foreground(colorPrimary)
	emptyStyle := lipgloss.NewStyle().Foreground(colorSubtle)

	var bars []barchart.BarData
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		day := stats.ForDate(r.orders, d.Format(dateLayout))

		value := barchart.BarValue{Name: "", Value: 0, Style: emptyStyle}
		if day.Orders > 0 {
			value = barchart.BarValue{
				Name:  "spend",
				Value: day.Amount.InexactFloat64(),
				Style: barStyle,
			}
		}

		bars = append(bars, barchart.BarData{
			Label:  d.Format("02"),
			Values: []barchart.BarValue{value},
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	m, err := time.Parse("2006-01", r.month)
	monthLabel := r.month
	if err == nil {
		monthLabel = m.Format("January 2006")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ", mutedStyle.Render(monthLabel),
	)

	chartView := r.chart.View()
	totalsView := r.renderTotals()
	nav := mutedStyle.Render("  ←/→: month")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", chartView, "", totalsView, "", nav),
	)
}

func (r reportsModel) renderTotals() string {
	now := time.Now()
	today := stats.ForDate(r.orders, now.Format(dateLayout))
	week := stats.ForWeek(r.orders, now, r.weekStart)
	month := stats.ForMonth(r.orders, r.month)
	all := stats.Sum(r.orders)

	row := func(label string, t stats.Totals) string {
		return fmt.Sprintf("  %-12s %4d orders %5d tiffins  %s",
			label, t.Orders, t.Tiffins, highlightStyle.Render(formatAmount(t.Amount)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Totals"),
		row("Today", today),
		row("This week", week),
		row("This month", month),
		row("All time", all),
	)
}
