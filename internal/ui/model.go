package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/ttrk/internal/timelog"
)

const tickInterval = time.Second

// Model owns Bubble Tea state for the dashboard. It mutates the log it was
// given in place; the caller persists it after the program exits.
type Model struct {
	log   *timelog.Log
	clock timelog.Clock
	now   time.Time

	mode  mode
	input textinput.Model

	changed    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeEnd
	modeConfirmCancel
)

type tickMsg time.Time

// NewModel seeds the dashboard with an already loaded log.
func NewModel(log *timelog.Log, clock timelog.Clock) Model {
	if log == nil {
		log = &timelog.Log{}
	}
	if clock == nil {
		clock = timelog.SystemClock
	}

	input := textinput.New()
	input.Placeholder = "what did you work on?"
	input.Prompt = "> "

	return Model{
		log:   log,
		clock: clock,
		now:   clock(),
		mode:  modeNormal,
		input: input,
	}
}

// Log returns the log the dashboard operates on.
func (m Model) Log() *timelog.Log {
	return m.log
}

// Changed reports whether the log was mutated and needs saving.
func (m Model) Changed() bool {
	return m.changed
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update wires dashboard state transitions from key presses and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = m.clock()
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeEnd {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeEnd:
		return m.handleEndKey(msg)
	case modeConfirmCancel:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "b":
		return m.begin()
	case "e":
		return m.beginEnd()
	case "c":
		if m.log.Current == nil {
			return m.fail(timelog.ErrNoCurrentSession)
		}
		m.mode = modeConfirmCancel
		m.statusLine = ""
		m.errorLine = ""
	}
	return m, nil
}

func (m Model) handleEndKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitEnd()
	case tea.KeyEsc:
		return m.backToNormal("Cancelled.")
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeNormal
		session, err := m.log.Cancel()
		if err != nil {
			return m.fail(err)
		}
		m.changed = true
		m.statusLine = CanceledMessage(session)
		m.errorLine = ""
	case "n", "N", "esc":
		return m.backToNormal("Session kept.")
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) begin() (tea.Model, tea.Cmd) {
	now := m.clock()
	m.now = now
	if _, err := m.log.Begin(now); err != nil {
		return m.fail(err)
	}
	m.changed = true
	m.statusLine = "Started a session."
	m.errorLine = ""
	return m, nil
}

func (m Model) beginEnd() (tea.Model, tea.Cmd) {
	if m.log.Current == nil {
		return m.fail(timelog.ErrNoCurrentSession)
	}
	m.mode = modeEnd
	m.input.Reset()
	m.statusLine = ""
	m.errorLine = ""
	return m, m.input.Focus()
}

func (m Model) submitEnd() (tea.Model, tea.Cmd) {
	now := m.clock()
	m.now = now
	session, err := m.log.End(now, m.input.Value())
	if err != nil {
		return m.fail(err)
	}
	m.changed = true
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
	m.statusLine = EndedMessage(session)
	m.errorLine = ""
	return m, nil
}

func (m Model) backToNormal(message string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
	m.statusLine = message
	m.errorLine = ""
	return m, nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.errorLine = describe(err, m.log)
	m.statusLine = ""
	return m, nil
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("ttrk"))
	b.WriteString("\n\n")

	if current := m.log.Current; current != nil {
		b.WriteString(ActiveStyle.Render("Session in progress"))
		b.WriteByte('\n')
		fmt.Fprintf(&b, "  began   %s\n", timelog.RenderTime(current.Start))
		fmt.Fprintf(&b, "  elapsed %s\n", timelog.FormatDuration(current.Elapsed(m.now)))
	} else {
		b.WriteString(MutedStyle.Render("No session in progress"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "Completed sessions: %d\n", len(m.log.Completed))
	if last, ok := m.log.LastCompleted(); ok {
		fmt.Fprintf(&b, "Most recent: %s (%s): %s\n",
			timelog.RenderTime(last.Start),
			timelog.FormatDuration(last.Elapsed(m.now)),
			last.Text(),
		)
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	switch m.mode {
	case modeEnd:
		b.WriteString("\nMessage for the session (Enter to save, Esc to cancel):\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeConfirmCancel:
		b.WriteString("\nCancel the current session? (y/n)\n")
	}

	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("b begin  e end  c cancel  q quit"))
	b.WriteByte('\n')

	return b.String()
}

// EndedMessage reports a session that was just completed.
func EndedMessage(session timelog.Session) string {
	return fmt.Sprintf("Ended session started %s.\nElapsed time: %s.",
		session.Start.Prose(),
		timelog.FormatDuration(session.Elapsed(time.Time{})),
	)
}

// CanceledMessage reports a session that was just discarded.
func CanceledMessage(session timelog.Session) string {
	return fmt.Sprintf("Canceled session that was started %s.", session.Start.Prose())
}

// AlreadyStartedMessage reports the session that blocked a begin.
func AlreadyStartedMessage(session timelog.Session) string {
	return fmt.Sprintf("There is already a current session, started %s.", session.Start.Prose())
}

func describe(err error, log *timelog.Log) string {
	switch {
	case errors.Is(err, timelog.ErrSessionInProgress) && log.Current != nil:
		return AlreadyStartedMessage(*log.Current)
	case errors.Is(err, timelog.ErrNoCurrentSession):
		return "There is no current session."
	case errors.Is(err, timelog.ErrMultilineMessage):
		return "A message for a completed session must be one line."
	default:
		return err.Error()
	}
}
