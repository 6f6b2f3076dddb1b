package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/topviz/internal/errors"
	"github.com/agbru/topviz/internal/figure"
)

// Layout constants for the viewer.
const (
	headerHeight = 1
	footerHeight = 1
)

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// panelHeights splits the body between the stacked panels.
func (l LayoutManager) panelHeights(n int) []int {
	if n == 0 {
		return nil
	}
	body := max(l.height-headerHeight-footerHeight, n*minPanelHeight)
	out := make([]int, n)
	for i := range out {
		out[i] = body / n
	}
	out[n-1] += body % n
	return out
}

// ContextCancelledMsg is sent when the viewer's context is done.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model of the chart viewer.
type Model struct {
	header HeaderModel
	keymap KeyMap

	LayoutManager

	ctx    context.Context
	fig    figure.Figure
	series []figure.Series // legend order, across panels
	hidden []bool
	cursor int
}

// NewModel creates the viewer model for fig.
func NewModel(ctx context.Context, fig figure.Figure, version string) Model {
	series := fig.Series()
	return Model{
		header: NewHeaderModel(version, fig.Source, fig.Samples()),
		keymap: DefaultKeyMap(),
		ctx:    ctx,
		fig:    fig,
		series: series,
		hidden: make([]bool, len(series)),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return watchContextCmd(m.ctx)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		return m, nil

	case ContextCancelledMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.ToggleNth):
		n := int(msg.String()[0] - '1')
		m.toggle(n)

	case key.Matches(msg, m.keymap.Next):
		if len(m.series) > 0 {
			m.cursor = (m.cursor + 1) % len(m.series)
		}

	case key.Matches(msg, m.keymap.Prev):
		if len(m.series) > 0 {
			m.cursor = (m.cursor - 1 + len(m.series)) % len(m.series)
		}

	case key.Matches(msg, m.keymap.Toggle):
		m.toggle(m.cursor)

	case key.Matches(msg, m.keymap.ShowAll):
		m.hidden = make([]bool, len(m.series))
	}
	return m, nil
}

// handleMouse toggles the single legend entry under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	top := headerHeight
	for i, pv := range m.panelViews() {
		if msg.Y == top+1 {
			if idx, ok := hitLegend(pv.legend(), msg.X-1); ok {
				m.cursor = idx
				m.toggle(idx)
			}
			return m, nil
		}
		top += m.panelHeights(len(m.fig.Panels))[i]
	}
	return m, nil
}

// toggle flips the visibility of the n-th legend entry. Other entries of the
// same legend group are left alone.
func (m *Model) toggle(n int) {
	if n < 0 || n >= len(m.hidden) {
		return
	}
	hidden := make([]bool, len(m.hidden))
	copy(hidden, m.hidden)
	hidden[n] = !hidden[n]
	m.hidden = hidden
}

// Hidden reports whether the n-th legend entry is hidden.
func (m Model) Hidden(n int) bool {
	return n >= 0 && n < len(m.hidden) && m.hidden[n]
}

func (m Model) panelViews() []panelView {
	heights := m.panelHeights(len(m.fig.Panels))
	views := make([]panelView, len(m.fig.Panels))
	idx := 0
	for i, p := range m.fig.Panels {
		entries := make([]legendEntry, len(p.Series))
		for j, s := range p.Series {
			entries[j] = legendEntry{
				index:    idx,
				series:   s,
				hidden:   m.hidden[idx],
				selected: idx == m.cursor,
			}
			idx++
		}
		views[i] = panelView{panel: p, entries: entries, width: m.width, height: heights[i]}
	}
	return views
}

// View renders the header, the stacked panels and the key help.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	parts := []string{m.header.View()}
	for _, pv := range m.panelViews() {
		parts = append(parts, pv.View())
	}
	parts = append(parts, m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) footerView() string {
	items := make([]string, 0, len(m.keymap.ShortHelp()))
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		items = append(items, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return " " + strings.Join(items, footerDescStyle.Render(" · "))
}

// Viewer displays a figure in the terminal until the user quits.
type Viewer struct {
	Version string
	// Options are appended to the program options, e.g. to redirect input
	// and output.
	Options []tea.ProgramOption
}

// Display runs the interactive viewer and blocks until it exits.
func (v Viewer) Display(ctx context.Context, fig figure.Figure) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, v.Options...)
	p := tea.NewProgram(NewModel(ctx, fig, v.Version), opts...)
	if _, err := p.Run(); err != nil {
		return apperrors.RenderError{Backend: "terminal", Cause: err}
	}
	return ctx.Err()
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
