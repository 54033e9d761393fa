package learn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/ui"
)

type Registry interface {
	IsChecked(id string) bool
	Toggle(id string) bool
}

type row struct {
	category string
	word     catalog.Word
	header   bool
}

// Model lists every word by category; the row under the cursor can be
// checked or unchecked.
type Model struct {
	registry Registry
	rows     []row
	// index into rows of each word row, in order
	words    []int
	cursor   int
	viewport viewport.Model
	ready    bool
	width    int
	helpmode ui.HelpModel

	// Standalone quits the program on esc instead of only closing.
	Standalone bool
	Closed     bool
}

func New(c catalog.Catalog, registry Registry) *Model {
	m := &Model{registry: registry}
	for _, cat := range c.Categories {
		m.rows = append(m.rows, row{category: cat.Name, header: true})
		for _, w := range cat.Words {
			m.words = append(m.words, len(m.rows))
			m.rows = append(m.rows, row{category: cat.Name, word: w})
		}
	}
	m.helpmode = ui.HelpModel{
		Keyhelp: [][]string{
			{"↑/k", "up"},
			{"↓/j", "down"},
			{"u", "page up"},
			{"d", "page down"},
			{"enter/x", "check / uncheck"},
			{"esc/q", "back"},
			{"?", "back"},
		},
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Current is the word under the cursor.
func (m *Model) Current() (catalog.Word, bool) {
	if len(m.words) == 0 {
		return catalog.Word{}, false
	}
	return m.rows[m.words[m.cursor]].word, true
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.key(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		viewportHeight := msg.Height - 2 // infobar and footer
		if !m.ready {
			m.viewport = viewport.Model{Width: msg.Width, Height: viewportHeight}
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.refresh()
	case ui.HelpMsg:
		m.helpmode.Active = !m.helpmode.Active
		m.refresh()
	}
	return m, nil
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		return m.close()
	case tea.KeyUp:
		m.move(-1)
	case tea.KeyDown:
		m.move(1)
	case tea.KeyEnter:
		m.toggle()
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			m.move(-1)
		case "j":
			m.move(1)
		case "u":
			m.move(-m.page())
		case "d":
			m.move(m.page())
		case "x":
			m.toggle()
		case "q":
			return m.close()
		case "?":
			return func() tea.Msg { return ui.HelpMsg{} }
		}
	}
	return nil
}

func (m *Model) close() tea.Cmd {
	m.Closed = true
	if m.Standalone {
		return tea.Quit
	}
	return nil
}

func (m *Model) page() int {
	if m.viewport.Height > 1 {
		return m.viewport.Height - 1
	}
	return 1
}

func (m *Model) move(n int) {
	if len(m.words) == 0 {
		return
	}
	m.cursor += n
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.words) {
		m.cursor = len(m.words) - 1
	}
	m.refresh()
}

func (m *Model) toggle() {
	w, ok := m.Current()
	if !ok {
		return
	}
	m.registry.Toggle(w.ID())
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	if m.helpmode.Active {
		m.viewport.SetContent(m.helpmode.View())
		m.viewport.GotoTop()
		return
	}
	m.viewport.SetContent(wordwrap.String(m.content(), m.viewport.Width))

	// keep the cursor row on screen
	if len(m.words) == 0 {
		return
	}
	line := m.words[m.cursor]
	if line < m.viewport.YOffset {
		m.viewport.YOffset = line
	}
	if m.viewport.Height > 0 && line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = line - m.viewport.Height + 1
	}
}

func (m *Model) content() string {
	lines := make([]string, 0, len(m.rows))
	selected := -1
	if len(m.words) != 0 {
		selected = m.words[m.cursor]
	}
	for i, r := range m.rows {
		if r.header {
			lines = append(lines, ui.StyleCategory(r.category))
			continue
		}
		style := ui.StyleKeyHelp
		if i == selected {
			style = ui.StyleSelect
		}
		lines = append(lines, ui.Line(
			m.width,
			ui.Cell{Width: 2, Text: cursorMark(i == selected)},
			ui.Cell{Width: 7, Text: ui.StyleLevel("Lv." + strconv.Itoa(r.word.Level))},
			ui.Cell{Text: style(r.word.Prompt)},
			ui.Cell{Text: style(r.word.Target)},
			ui.Cell{Width: 3, Text: ui.Checkbox(m.registry.IsChecked(r.word.ID())), Align: ui.RightAlign},
		))
	}
	return strings.Join(lines, "\n")
}

func cursorMark(selected bool) string {
	if selected {
		return ui.StyleSelect(">")
	}
	return " "
}

func (m *Model) View() string {
	if !m.ready {
		return "\n  Initalizing..."
	}
	checked := 0
	for _, i := range m.words {
		if m.registry.IsChecked(m.rows[i].word.ID()) {
			checked++
		}
	}
	info := ui.Line(
		m.width,
		ui.Cell{Text: ui.StyleWordCount(fmt.Sprintf("words %d", len(m.words)))},
		ui.Cell{Text: ui.StyleWordCount(fmt.Sprintf("checked %d", checked))},
		ui.Cell{Text: ui.StyleHelp("enter:check  esc:back"), Align: ui.RightAlign},
	)
	return strings.Join(
		[]string{
			m.viewport.View(), "\n",
			info, "\n",
			ui.Footer(m.viewport.Width),
		},
		"",
	)
}

func Start(c catalog.Catalog, registry Registry) error {
	m := New(c, registry)
	m.Standalone = true
	return tea.NewProgram(m).Start()
}
