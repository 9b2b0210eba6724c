package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridstep/internal/core"
	"github.com/vovakirdan/gridstep/internal/input"
	"github.com/vovakirdan/gridstep/internal/world"
)

// Model is the Bubble Tea model that drives a world.
type Model struct {
	world    *world.World
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     input.KeyState
	keyMap   KeyMap
	help     help.Model
	logger   *log.Logger
	lastTick time.Time
	selected int // Entity edited by the facing keys
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given world.
func NewModel(w *world.World, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Model{
		world:  w,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   input.NewKeyState(),
		keyMap: DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys are held until the next
// tick; everything else acts at once.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k := MapMovementKey(msg); k != input.KeyNone {
		m.keys.Hold(k)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		m.world.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keyMap.NextEntity):
		if n := len(m.world.Entities()); n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case key.Matches(msg, m.keyMap.TurnLeft):
		m.editFacing(false)
	case key.Matches(msg, m.keyMap.TurnRight):
		m.editFacing(true)
	}
	return m, nil
}

// editFacing rotates the selected entity's facing as an inspector edit.
func (m *Model) editFacing(clockwise bool) {
	entities := m.world.Entities()
	if len(entities) == 0 {
		return
	}
	e := entities[m.selected]
	d := e.Stepper().Facing().RotateAntiClockwise()
	if clockwise {
		d = e.Stepper().Facing().RotateClockwise()
	}
	if err := m.world.SetFacing(e.Name, d); err != nil {
		m.logger.Error("set facing", "entity", e.Name, "error", err)
		return
	}
	m.logger.Debug("facing edited", "entity", e.Name, "facing", d)
}

// handleTick advances the world by the time since the previous tick.
func (m *Model) handleTick(now time.Time) {
	dt := elapsed(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.world.Step(m.keys, dt)
	m.keys.Clear()

	for _, name := range result.Started {
		m.logger.Debug("move started", "entity", name, "events", result.Events)
	}
	for _, name := range result.Dropped {
		m.logger.Debug("press dropped while moving", "entity", name, "events", result.Events)
	}
	for _, name := range result.Completed {
		if e, ok := m.world.Entity(name); ok {
			x, y := e.Cell()
			m.logger.Debug("move completed", "entity", name, "x", x, "y", y, "facing", e.Stepper().Facing())
		}
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.world.Render(m.screen)
	if entities := m.world.Entities(); len(entities) > 0 {
		m.screen.DrawTextColored(0, m.world.Board().H+3+m.selected, "›", core.ColorMagenta)
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keyMap))
	return sb.String()
}

// Run starts the Bubble Tea program for the given world.
func Run(w *world.World, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(w, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
