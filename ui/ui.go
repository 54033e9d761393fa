package ui

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

func getElementWidth(widthTotal int, count int) (int, int) {
	if count == 0 || widthTotal <= 0 {
		return 0, 0
	}
	remainder := widthTotal % count
	width := int(math.Floor(float64(widthTotal) / float64(count)))

	return width, remainder
}

type TextAlign int

const (
	LeftAlign TextAlign = iota
	RightAlign
)

func (ta TextAlign) String() string {
	return [...]string{"LeftAlign", "RightAlign"}[ta]
}

type Cell struct {
	Text  string
	Width int
	Align TextAlign
}

// Line lays cells out across width. Cells without a width share what is left.
func Line(width int, cells ...Cell) string {

	widthFlex := width
	var widthFlexCells []*int

	for i, cell := range cells {
		if cell.Width <= 0 {
			widthFlexCells = append(widthFlexCells, &cells[i].Width)
			continue
		}
		widthFlex -= cell.Width
	}

	widthWithoutRemainder, remainder := getElementWidth(widthFlex, len(widthFlexCells))
	for i := range widthFlexCells {

		*widthFlexCells[i] = widthWithoutRemainder
		if i < remainder {
			*widthFlexCells[i] = widthWithoutRemainder + 1
		}
	}

	var gridLine string
	for _, cell := range cells {
		textWidth := ansi.PrintableRuneWidth(cell.Text)
		if textWidth > cell.Width {
			cell.Text = Truncate(cell.Text, cell.Width)
			textWidth = cell.Width
		}

		if cell.Align == RightAlign {
			gridLine += strings.Repeat(" ", cell.Width-textWidth) + cell.Text
			continue
		}

		gridLine += cell.Text + strings.Repeat(" ", cell.Width-textWidth)
	}
	return gridLine

}

// Truncate cuts old to at most n printable columns. Escape sequences are kept
// so styles survive, and a reset is appended when anything was cut.
func Truncate(old string, n int) string {
	var (
		new       strings.Builder
		newlength int
		isansi    bool
	)
	if n <= 0 {
		return ""
	}
	for _, c := range old {
		if c == ansi.Marker {
			isansi = true
			new.WriteRune(c)
			continue
		}
		if isansi {
			if ansi.IsTerminator(c) {
				isansi = false
			}
			new.WriteRune(c)
			continue
		}
		w := runewidth.RuneWidth(c)
		if newlength+w > n {
			new.WriteString("\x1b[0m")
			return new.String()
		}
		new.WriteRune(c)
		newlength += w
	}
	return old
}

func JoinLines(texts ...string) string {
	return strings.Join(
		texts,
		"\n",
	)
}
