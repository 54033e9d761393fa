package ui

import (
	"fmt"
	"strings"
	"time"
)

type HelpMsg struct {
}

type HelpModel struct {
	Keyhelp [][]string
	Active  bool
}

func (m HelpModel) View() string {
	var text []string
	text = append(text, "")
	text = append(text, "")
	for _, info := range m.Keyhelp {
		k, help := info[0], info[1]
		text = append(text,
			Line(
				50,
				Cell{
					Width: 4,
				},
				Cell{
					Width: 12,
					Align: LeftAlign,
					Text:  StyleKey(k),
				},
				Cell{
					Align: LeftAlign,
					Text:  StyleKeyHelp(help),
				},
			))
	}
	return strings.Join(text, "\n")
}

func Footer(width int) string {
	if width < 80 {
		return StyleLogo(" medtyping ")
	}

	t := time.Now()
	tstr := fmt.Sprintf("%s %02d:%02d", t.Weekday().String(), t.Hour(), t.Minute())

	return Line(
		width,
		Cell{
			Width: 13,
			Text:  StyleLogo(" medtyping "),
		},
		Cell{
			Width: 50,
			Text:  StyleHelp("ctrl+c:exit | ?:more help"),
		},
		Cell{
			Text:  StyleHelp(tstr),
			Align: RightAlign,
		},
	)
}

// Checkbox renders a checkmark state the way the quiz and learn screens show it.
func Checkbox(checked bool) string {
	if checked {
		return StyleChecked("☑")
	}
	return StyleHelp("□")
}
