package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devanshm/tiffin/internal/store"
)

// statusModel shows the 30-day tracker: one row per acted-on day plus the
// aggregate order rate.
type statusModel struct {
	store  *store.Store
	width  int
	height int

	history []store.TiffinStatus
	summary store.StatusStats
}

func newStatusModel(s *store.Store) statusModel {
	return statusModel{store: s}
}

func (s *statusModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type statusDataMsg struct {
	history []store.TiffinStatus
	summary store.StatusStats
}

func (s statusModel) refresh() tea.Cmd {
	return func() tea.Msg {
		history, _ := s.store.ListStatusHistory()
		summary, _ := s.store.GetStatusStats()
		return statusDataMsg{history: history, summary: summary}
	}
}

func (s statusModel) update(msg tea.Msg) (statusModel, tea.Cmd) {
	if msg, ok := msg.(statusDataMsg); ok {
		s.history = msg.history
		s.summary = msg.summary
	}
	return s, nil
}

func (s statusModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Status — last 30 days")

	if len(s.history) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No tracked days yet. Order or skip a day on the Today tab."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, st := range s.history {
		var glyph, label string
		style := mutedStyle
		switch st.Status {
		case store.StatusOrdered:
			glyph, label, style = "✓", "ordered", successStyle
		case store.StatusSkipped:
			glyph, label, style = "✗", "skipped", errorStyle
		default:
			glyph, label, style = "●", "pending", warningStyle
		}

		detail := ""
		if st.NumberOfTiffins != nil && st.TotalAmount != nil {
			detail = fmt.Sprintf("  %d tiffins, %s", *st.NumberOfTiffins, formatAmount(*st.TotalAmount))
		}
		rows = append(rows, fmt.Sprintf("  %s %s %s%s",
			style.Render(glyph), st.Date, style.Render(label), detail))
	}

	rows = append(rows, "")
	rows = append(rows, highlightStyle.Render(fmt.Sprintf(
		"  %d days tracked — %d ordered, %d skipped, %d pending (%d%% order rate)",
		s.summary.TotalDays, s.summary.OrderedDays, s.summary.SkippedDays,
		s.summary.PendingDays, s.summary.OrderRate)))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
