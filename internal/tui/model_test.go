package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/topviz/internal/figure"
	"github.com/agbru/topviz/internal/toplog"
)

func testFigure(t *testing.T) figure.Figure {
	t.Helper()
	res, err := toplog.Parse(strings.NewReader(
		"PID %CPU %MEM RES VIRT\n" +
			"1 10.0 1.5 2048 8192\n" +
			"2 35.5 1.7 2100 8192\n" +
			"3 20.0 1.6 2300 8300\n"))
	if err != nil {
		t.Fatal(err)
	}
	return figure.Build(res.Dataset, figure.WithSource("/tmp/top.log"))
}

func newSizedModel(t *testing.T, fig figure.Figure) Model {
	t.Helper()
	m := NewModel(context.Background(), fig, "v1.0.0")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()
	for _, msg := range []tea.KeyMsg{
		runes("q"),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newSizedModel(t, testFigure(t))
		if _, cmd := m.Update(msg); !isQuit(cmd) {
			t.Errorf("%q did not quit", msg.String())
		}
	}
}

func TestModel_ToggleNth(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t, testFigure(t))

	m = send(t, m, runes("1"))
	if !m.Hidden(0) || m.Hidden(1) {
		t.Fatalf("after 1: hidden = %v", m.hidden)
	}
	m = send(t, m, runes("1"))
	if m.Hidden(0) {
		t.Fatal("second press did not show the series again")
	}

	// Out of range digits are ignored.
	m = send(t, m, runes("9"))
	for i := range m.hidden {
		if m.Hidden(i) {
			t.Errorf("entry %d hidden by out of range key", i)
		}
	}
}

func TestModel_ToggleItemLeavesGroup(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t, testFigure(t))

	// Entry 3 is RES in the memory group; VIRT stays visible.
	m = send(t, m, runes("3"))
	if !m.Hidden(2) || m.Hidden(3) {
		t.Errorf("hidden = %v, want only RES hidden", m.hidden)
	}
}

func TestModel_CursorAndShowAll(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t, testFigure(t))

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeySpace},
	)
	if m.cursor != 1 || !m.Hidden(1) {
		t.Fatalf("cursor = %d, hidden = %v", m.cursor, m.hidden)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != len(m.series)-1 {
		t.Errorf("cursor did not wrap: %d", m.cursor)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Hidden(len(m.series) - 1) {
		t.Error("enter did not toggle the selected entry")
	}

	m = send(t, m, runes("a"))
	for i := range m.hidden {
		if m.Hidden(i) {
			t.Errorf("entry %d still hidden after show all", i)
		}
	}
}

func TestModel_MouseClickTogglesLegendEntry(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t, testFigure(t))
	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	// Percentage legend is on the line below the top border of the first panel.
	m = send(t, m, click(2, 2))
	if !m.Hidden(0) {
		t.Fatalf("click on %%CPU did not hide it: %v", m.hidden)
	}

	// First memory entry: header + first panel + top border.
	memLegendY := headerHeight + m.panelHeights(2)[0] + 1
	m = send(t, m, click(2, memLegendY))
	if !m.Hidden(2) || m.Hidden(3) {
		t.Fatalf("click on RES: hidden = %v", m.hidden)
	}

	// Gap between entries, wrong line and other buttons do nothing.
	before := append([]bool(nil), m.hidden...)
	m = send(t, m,
		click(10, 2),
		click(2, 5),
		tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
	)
	for i := range before {
		if before[i] != m.hidden[i] {
			t.Errorf("entry %d changed by a click outside the legend", i)
		}
	}
}

func TestModel_View(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t, testFigure(t))
	view := m.View()

	for _, want := range []string{"topviz v1.0.0", "top.log", "3 samples", "%CPU", "%MEM", "RES", "VIRT", "Usage [%]", "Memory [Bytes]", "sample", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if h := lipgloss.Height(view); h != 30 {
		t.Errorf("view height = %d, want 30", h)
	}
}

func TestModel_HiddenSeriesLeaveChart(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t, testFigure(t))
	if strings.Contains(m.View(), "no data") {
		t.Fatal("unexpected empty panel")
	}
	m = send(t, m, runes("1"), runes("2"))
	if got := strings.Count(m.View(), "no data"); got != 1 {
		t.Errorf("empty panels = %d, want 1", got)
	}
}

func TestModel_EmptyFigure(t *testing.T) {
	t.Parallel()
	m := newSizedModel(t, figure.Build(toplog.NewDataset()))
	m = send(t, m, runes("1"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeySpace})

	view := m.View()
	if got := strings.Count(view, "no data"); got != 2 {
		t.Errorf("empty panels = %d, want 2", got)
	}
}

func TestModel_InitializingView(t *testing.T) {
	t.Parallel()
	m := NewModel(context.Background(), testFigure(t), "dev")
	if m.View() != "Initializing..." {
		t.Errorf("View() before size = %q", m.View())
	}
}

func TestModel_ContextCancellationQuits(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	m := NewModel(ctx, testFigure(t), "dev")
	cancel()

	msg := m.Init()()
	cc, ok := msg.(ContextCancelledMsg)
	if !ok || !errors.Is(cc.Err, context.Canceled) {
		t.Fatalf("Init() msg = %#v", msg)
	}
	if _, cmd := m.Update(msg); !isQuit(cmd) {
		t.Error("cancellation did not quit")
	}
}

func TestLayoutManager_PanelHeights(t *testing.T) {
	t.Parallel()
	tests := []struct {
		height int
		want   []int
	}{
		{30, []int{14, 14}},
		{31, []int{14, 15}},
		{5, []int{minPanelHeight, minPanelHeight}},
	}
	for _, tt := range tests {
		got := LayoutManager{width: 80, height: tt.height}.panelHeights(2)
		if len(got) != 2 || got[0] != tt.want[0] || got[1] != tt.want[1] {
			t.Errorf("panelHeights(height=%d) = %v, want %v", tt.height, got, tt.want)
		}
	}
}
