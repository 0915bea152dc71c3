package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramNotifier delivers reminders into the running Bubble Tea program.
// Before SetProgram is called (or after the program exits) Notify does
// nothing.
type ProgramNotifier struct {
	mu sync.Mutex
	p  *tea.Program
}

func NewProgramNotifier() *ProgramNotifier {
	return &ProgramNotifier{}
}

func (n *ProgramNotifier) SetProgram(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.p = p
}

func (n *ProgramNotifier) Notify(title, body string) {
	n.mu.Lock()
	p := n.p
	n.mu.Unlock()
	if p == nil {
		return
	}
	p.Send(reminderMsg{title: title, body: body})
}
