// Package convview is an optional terminal live-view of a recall session's
// synchronous-update loop, built on
// github.com/charmbracelet/bubbletea and github.com/charmbracelet/lipgloss,
// grounded on zeam-labs-zeam-testnet's use of the same charm stack for its
// own terminal dashboards. The recall package imports this package only
// for the Update type fed by Session.LiveObserver; a Session runs the same
// dynamics with or without that observer, and convview only consumes the
// updates the dynamics.StepObserver callback produces (SPEC_FULL.md §10.3).
package convview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update is one reported step of the convergence loop.
type Update struct {
	Iteration int
	Energy    float64
	Hamming   int // distance to the reference pattern, -1 if unknown
	Done      bool
	Converged bool
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// Model renders the most recent Update received over Updates.
type Model struct {
	Updates <-chan Update
	last    Update
	done    bool
}

// New returns a Model that reads reported steps from updates until the
// channel is closed.
func New(updates <-chan Update) Model {
	return Model{Updates: updates}
}

type updateMsg Update
type closedMsg struct{}

func (m Model) Init() tea.Cmd {
	return m.waitForUpdate()
}

func (m Model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		u, ok := <-m.Updates
		if !ok {
			return closedMsg{}
		}
		return updateMsg(u)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case updateMsg:
		m.last = Update(msg)
		if m.last.Done {
			m.done = true
			return m, tea.Quit
		}
		return m, m.waitForUpdate()
	case closedMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) View() string {
	header := titleStyle.Render("hopfield recall — synchronous dynamics")
	body := fmt.Sprintf(
		"%s %d\n%s %.4f\n%s %d\n",
		labelStyle.Render("iteration:"), m.last.Iteration,
		labelStyle.Render("energy:   "), m.last.Energy,
		labelStyle.Render("hamming:  "), m.last.Hamming,
	)

	footer := labelStyle.Render("press q to quit")
	if m.done {
		if m.last.Converged {
			footer = doneStyle.Render("converged — press q to exit")
		} else {
			footer = warnStyle.Render("oscillation detected — press q to exit")
		}
	}

	return header + "\n\n" + body + "\n" + footer + "\n"
}
