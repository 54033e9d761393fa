package practice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yusan117/medtyping/catalog"
	"github.com/yusan117/medtyping/session"
	"github.com/yusan117/medtyping/ui"
)

// 0 means every word
var countChoices = []int{5, 10, 20, 0}

type menu struct {
	names   []string
	cursor  int
	levels  []int
	level   int
	counts  []int
	count   int
	checked bool
	message string
}

// newMenu lists the categories followed by the random entry, with the
// selectors preset from opts.
func newMenu(c catalog.Catalog, opts Options) menu {
	m := menu{
		names:   append(c.Names(), session.RandomLabel),
		levels:  append([]int{0}, c.Levels()...),
		counts:  withCount(countChoices, opts.Count),
		checked: opts.Checked,
	}
	for i, lv := range m.levels {
		if lv == opts.Level {
			m.level = i
		}
	}
	m.count = len(m.counts) - 1
	for i, n := range m.counts {
		if n == opts.Count {
			m.count = i
		}
	}
	for i, name := range m.names {
		if name == opts.Category {
			m.cursor = i
		}
	}
	if opts.All {
		m.cursor = len(m.names) - 1
	}
	return m
}

// withCount adds n to the choices, in order before "all", when it is not
// one of them already.
func withCount(choices []int, n int) []int {
	counts := []int{}
	added := n <= 0
	for _, c := range choices {
		if c == n {
			added = true
		}
		if !added && (c == 0 || c > n) {
			counts = append(counts, n)
			added = true
		}
		counts = append(counts, c)
	}
	if !added {
		counts = append(counts, n)
	}
	return counts
}

func (m *menu) move(n int) {
	m.cursor = (m.cursor + n + len(m.names)) % len(m.names)
}

func (m *menu) nextLevel() {
	m.level = (m.level + 1) % len(m.levels)
}

func (m *menu) nextCount() {
	m.count = (m.count + 1) % len(m.counts)
}

func (m menu) options() session.Options {
	opts := session.Options{
		Level:       m.levels[m.level],
		Count:       m.counts[m.count],
		CheckedOnly: m.checked,
	}
	if m.cursor == len(m.names)-1 {
		opts.All = true
	} else {
		opts.Category = m.names[m.cursor]
	}
	return opts
}

func levelText(lv int) string {
	if lv == 0 {
		return "all"
	}
	return "Lv." + strconv.Itoa(lv)
}

func countText(n int) string {
	if n == 0 {
		return "all"
	}
	return strconv.Itoa(n)
}

func (m menu) View(width int) string {
	lines := []string{"", ""}
	for i, name := range m.names {
		if i == m.cursor {
			lines = append(lines, "  "+ui.StyleSelect("> "+name))
			continue
		}
		lines = append(lines, "    "+ui.StyleCategory(name))
	}
	lines = append(lines, "", "")

	check := "off"
	if m.checked {
		check = "on"
	}
	lines = append(lines, ui.Line(
		width,
		ui.Cell{Width: 4},
		ui.Cell{Width: 18, Text: ui.StyleKey("l ") + ui.StyleKeyHelp("level "+levelText(m.levels[m.level]))},
		ui.Cell{Width: 18, Text: ui.StyleKey("n ") + ui.StyleKeyHelp("count "+countText(m.counts[m.count]))},
		ui.Cell{Text: ui.StyleKey("c ") + ui.StyleKeyHelp(fmt.Sprintf("checked only %s", check))},
	))
	if m.message != "" {
		lines = append(lines, "", "    "+ui.StyleErrMessage(m.message))
	}
	return strings.Join(lines, "\n")
}
