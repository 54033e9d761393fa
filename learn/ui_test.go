package learn

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yusan117/medtyping/catalog"
)

type registry map[string]bool

func (r registry) IsChecked(id string) bool {
	return r[id]
}

func (r registry) Toggle(id string) bool {
	r[id] = !r[id]
	return r[id]
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{Categories: []catalog.Category{
		{Name: "循環器", Words: []catalog.Word{
			{Prompt: "血圧", Target: "blood pressure", Level: 1},
			{Prompt: "心臓", Target: "heart", Level: 1},
		}},
		{Name: "呼吸器", Words: []catalog.Word{
			{Prompt: "肺", Target: "lung", Level: 2},
		}},
	}}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleRows(t *testing.T) {
	reg := registry{}
	m := New(testCatalog(), reg)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !reg["heart"] {
		t.Fatalf("heart not checked: %v", reg)
	}
	m.Update(runes("j"))
	m.Update(runes("j"))
	if w, _ := m.Current(); w.Target != "lung" {
		t.Errorf("cursor on %q, want lung (stops at the end)", w.Target)
	}
	m.Update(runes("x"))
	m.Update(runes("x"))
	if reg["lung"] {
		t.Error("lung checked after two toggles")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(runes("k"))
	m.Update(runes("k"))
	if w, _ := m.Current(); w.Target != "blood pressure" {
		t.Errorf("cursor on %q, want blood pressure", w.Target)
	}

	v := m.View()
	for _, s := range []string{"循環器", "呼吸器", "血圧", "heart", "checked 1"} {
		if !strings.Contains(v, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	c := catalog.Catalog{Categories: []catalog.Category{{Name: "x"}}}
	for _, target := range []string{"aa", "bb", "cc", "dd", "ee", "ff", "gg", "hh"} {
		c.Categories[0].Words = append(c.Categories[0].Words, catalog.Word{Prompt: "問", Target: target, Level: 1})
	}
	m := New(c, registry{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 5})
	for i := 0; i < 7; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	line := m.words[m.cursor]
	if line < m.viewport.YOffset || line >= m.viewport.YOffset+m.viewport.Height {
		t.Errorf("cursor line %d outside viewport offset %d height %d", line, m.viewport.YOffset, m.viewport.Height)
	}
}

func TestClose(t *testing.T) {
	m := New(testCatalog(), registry{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.Closed || cmd != nil {
		t.Errorf("esc: closed %v cmd %v", m.Closed, cmd)
	}

	m = New(testCatalog(), registry{})
	m.Standalone = true
	_, cmd = m.Update(runes("q"))
	if !m.Closed || cmd == nil {
		t.Error("standalone q did not quit")
	}
}
