package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Progress is a live view of a retry run: the current attempt, the wait
// before the next one, and the eventual outcome.
type Progress struct {
	spinner  spinner.Model
	label    string
	total    int // total attempts the schedule allows
	attempt  int // current attempt, 1-based for display
	waiting  bool
	delay    time.Duration
	lastErr  error
	done     bool
	err      error
	canceled bool
}

// AttemptMsg signals that attempt n (zero-indexed) has started.
type AttemptMsg struct {
	Attempt int
}

// WaitMsg signals that attempt Attempt failed and the runner is sleeping
// for Delay before the next one.
type WaitMsg struct {
	Attempt int
	Err     error
	Delay   time.Duration
}

// DoneMsg signals that the run finished.
type DoneMsg struct {
	Err error
}

// NewProgress creates a progress view for a run allowing total attempts.
func NewProgress(label string, total int) Progress {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Progress{
		spinner: s,
		label:   label,
		total:   total,
		attempt: 1,
	}
}

// Init implements tea.Model.
func (p Progress) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update implements tea.Model.
func (p Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AttemptMsg:
		p.attempt = msg.Attempt + 1
		p.waiting = false
		return p, nil
	case WaitMsg:
		p.attempt = msg.Attempt + 1
		p.waiting = true
		p.delay = msg.Delay
		p.lastErr = msg.Err
		return p, nil
	case DoneMsg:
		p.done = true
		p.err = msg.Err
		return p, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			p.canceled = true
			return p, tea.Quit
		}
		return p, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View implements tea.Model.
func (p Progress) View() string {
	if p.done {
		if p.err == nil {
			return SuccessStyle.Render("✓ "+p.label) + "\n"
		}
		return ErrStyle.Render(fmt.Sprintf("✗ %s: %v", p.label, p.err)) + "\n"
	}
	if p.canceled {
		return ErrStyle.Render("✗ canceled") + "\n"
	}

	status := fmt.Sprintf("attempt %s",
		AttemptStyle.Render(fmt.Sprintf("%d/%d", p.attempt, p.total)))
	if p.waiting {
		status += fmt.Sprintf(", retrying in %s", DelayStyle.Render(p.delay.String()))
		if p.lastErr != nil {
			status += MutedStyle.Render(fmt.Sprintf(" (last error: %v)", p.lastErr))
		}
	}

	return fmt.Sprintf("%s %s %s\n", p.spinner.View(), LabelStyle.Render(p.label), status)
}

// Canceled reports whether the user interrupted the run.
func (p Progress) Canceled() bool {
	return p.canceled
}
