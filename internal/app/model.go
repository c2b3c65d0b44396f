package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/periodic/internal/surface"
)

// Model is the bubbletea front end over a Session.
type Model struct {
	session *Session

	// UI
	width  int
	height int
	sized  bool

	err error
}

// New creates a new Model.
func New(s *Session) Model {
	return Model{session: s}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Only the first size is checked; later resizes are drawn clipped.
		if !m.sized {
			m.sized = true
			if err := m.session.CheckSize(msg.Height, msg.Width); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.err != nil || !m.sized {
			return m, nil
		}
		if m.session.HandleKey(msg) == StatusTerminated {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	if m.err != nil || !m.sized || m.session.Status() == StatusTerminated {
		return ""
	}
	canvas := surface.NewCanvas(m.height, m.width)
	m.session.Draw(canvas)
	return canvas.Render()
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Session returns the underlying session.
func (m Model) Session() *Session {
	return m.session
}
