// Package tui is the terminal front-end. Searches run through the same
// orchestrator the web page uses and state changes reach the program as
// messages.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/outfitguide/web/internal/domain"
	"github.com/outfitguide/web/internal/render"
	"github.com/outfitguide/web/internal/service"
	"github.com/outfitguide/web/pkg/utils"
)

const helpLine = "enter: search • ctrl+u: clear • ↑/↓: browse suggestions • esc: quit"

// stateMsg carries a session snapshot from the orchestrator
type stateMsg domain.SessionState

// Model is the Bubble Tea model for the search screen
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	orch      *service.Orchestrator
	collector *service.InputCollector
	updates   chan domain.SessionState
	submitted string

	state    domain.SessionState
	cardKey  string
	cursor   int
	quitting bool
}

// New creates the model. initial pre-fills the input; quitting cancels ctx
// for any search still in flight.
func New(ctx context.Context, fetcher service.WeatherFetcher, initial string) *Model {
	ctx, cancel := context.WithCancel(ctx)
	m := &Model{
		ctx:     ctx,
		cancel:  cancel,
		orch:    service.NewOrchestrator(fetcher),
		updates: make(chan domain.SessionState, 1),
		state:   domain.Idle(),
	}
	m.collector = service.NewInputCollector(initial, func(loc string) { m.submitted = loc })
	m.orch.OnChange(m.publish)
	return m
}

// publish keeps only the newest snapshot so the orchestrator never blocks
// on a slow UI
func (m *Model) publish(s domain.SessionState) {
	for {
		select {
		case m.updates <- s:
			return
		default:
		}
		select {
		case <-m.updates:
		default:
		}
	}
}

func (m *Model) waitForState() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-m.updates:
			return stateMsg(s)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m *Model) search(location string) tea.Cmd {
	return func() tea.Msg {
		m.orch.Search(m.ctx, location)
		return nil
	}
}

// Init starts listening for state changes
func (m *Model) Init() tea.Cmd {
	return m.waitForState()
}

// Update handles key presses and state changes
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.setState(domain.SessionState(msg))
		return m, m.waitForState()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case tea.KeyEnter:
		if !m.collector.Submit() {
			return m, nil
		}
		return m, m.search(m.submitted)

	case tea.KeyBackspace:
		runes := []rune(m.collector.Value())
		if len(runes) > 0 {
			m.collector.Set(string(runes[:len(runes)-1]))
		}

	case tea.KeyCtrlU:
		m.collector.Set("")

	case tea.KeyRunes, tea.KeySpace:
		m.collector.Set(m.collector.Value() + string(msg.Runes))

	case tea.KeyUp:
		m.moveCursor(-1)

	case tea.KeyDown:
		m.moveCursor(1)
	}
	return m, nil
}

func (m *Model) setState(s domain.SessionState) {
	m.state = s
	resp, ok := s.Response()
	if !ok {
		return
	}
	// a different location gets a fresh card
	if resp.Weather.Location != m.cardKey {
		m.cardKey = resp.Weather.Location
		m.cursor = 0
	}
	m.cursor = utils.Clamp(m.cursor, 0, len(resp.Suggestions)-1)
}

func (m *Model) moveCursor(delta int) {
	resp, ok := m.state.Response()
	if !ok || len(resp.Suggestions) == 0 {
		return
	}
	m.cursor = utils.Clamp(m.cursor+delta, 0, len(resp.Suggestions)-1)
}

// Input returns the current input value
func (m *Model) Input() string { return m.collector.Value() }

// State returns the snapshot currently on screen
func (m *Model) State() domain.SessionState { return m.state }

// View renders the screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("Outfit Guide\n")
	b.WriteString("Get personalized clothing recommendations based on weather\n\n")
	b.WriteString("Location: " + m.collector.Value() + "█\n\n")

	v := render.Build(m.state)
	highlight := -1
	if v.Card != nil && v.Card.Suggestions != nil {
		highlight = m.cursor
	}
	b.WriteString(render.Text(v, highlight))

	b.WriteString("\n" + helpLine + "\n")
	return b.String()
}
