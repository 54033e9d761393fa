package ui

import (
	te "github.com/muesli/termenv"
)

var (
	StyleLogo       = NewStyle("#ffc27d", "#f37329", true, false)
	StyleHelp       = NewStyle("#4e4e4e", "", true, false)
	StyleKey        = NewStyle("#ff5faf", "", true, false)
	StyleKeyHelp    = NewStyle("#B9BFCA", "", false, false)
	StylePrompt     = NewStyle("#ffffff", "", true, false)
	StyleLevel      = NewStyle("#66C2CD", "", false, true)
	StyleCategory   = NewStyle("#D290E4", "", true, false)
	StyleSelect     = NewStyle("#ff5faf", "", true, false)
	StyleWordCount  = NewStyle("#B9BFCA", "", false, false)
	StyleSuccess    = NewStyle("#5fd75f", "", true, false)
	Stylefail       = NewStyle("#ff5f5f", "", true, false)
	StyleTyped      = NewStyle("#5fd75f", "", true, false)
	StyleRevealed   = NewStyle("#ff8700", "", false, true)
	StyleCursor     = NewStyle("#000000", "#ff5faf", false, false)
	StyleUntouched  = NewStyle("#4e4e4e", "", false, false)
	StyleChecked    = NewStyle("#ffd75f", "", true, false)
	StyleScore      = NewStyle("#ffc27d", "", true, false)
	StyleMessage    = NewStyle("#5fd75f", "", true, false)
	StyleErrMessage = NewStyle("#ff5f5f", "", false, false)
)

func NewStyle(fg string, bg string, bold bool, italic bool) func(string) string {
	s := te.Style{}.Foreground(te.ColorProfile().Color(fg)).Background(te.ColorProfile().Color(bg))
	if bold {
		s = s.Bold()
	}
	if italic {
		s = s.Italic()
	}
	return s.Styled
}
