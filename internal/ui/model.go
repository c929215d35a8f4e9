package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/rotary-menu/internal/console"
	"github.com/atomicstack/rotary-menu/internal/menu"
	"github.com/atomicstack/rotary-menu/internal/theme"
)

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "menu"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// EventMsg feeds a navigator event into a running program, for example from
// a hardware encoder reader calling Program.Send.
type EventMsg menu.Event

// Options configures the model.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	FilterFactor int
}

// Model implements the Bubble Tea model for the encoder menu. It is also
// the navigator's render sink: each frame pushed by the navigator becomes
// the content of the next View.
type Model struct {
	nav     *menu.Navigator
	counter *console.Counter
	keys    keyMap

	primary   string
	secondary string
	frames    int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a navigator over g to a new model. navOpts are applied
// after the filter factor from opts.
func NewModel(g *menu.Graph, opts Options, navOpts ...menu.Option) *Model {
	m := &Model{
		counter:    console.NewCounter(opts.FilterFactor),
		keys:       defaultKeyMap(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	all := make([]menu.Option, 0, len(navOpts)+1)
	all = append(all, menu.WithFilterFactor(opts.FilterFactor))
	all = append(all, navOpts...)
	m.nav = menu.NewNavigator(g, m, all...)
	m.nav.Render()
	m.registerHandlers()
	return m
}

// Render records the frame produced by the navigator.
func (m *Model) Render(primary, secondary string) {
	m.primary = primary
	m.secondary = secondary
	m.frames++
}

// Navigator exposes the navigator driven by the model.
func (m *Model) Navigator() *menu.Navigator { return m.nav }

// Frames reports how many frames the navigator has pushed.
func (m *Model) Frames() int { return m.frames }

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(EventMsg{}):          m.handleEventMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}
