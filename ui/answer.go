package ui

import (
	"strings"

	"github.com/yusan117/medtyping/quiz"
)

// AnswerBox draws one box per target character. A shaking box is pushed
// right and marked, standing in for the wobble of a wrong key.
func AnswerBox(cells []quiz.Cell, shake bool) string {
	parts := make([]string, 0, len(cells))
	for _, c := range cells {
		switch c.Kind {
		case quiz.Space:
			parts = append(parts, " ")
		case quiz.Typed:
			parts = append(parts, StyleTyped(string(c.Char)))
		case quiz.Revealed:
			parts = append(parts, StyleRevealed(string(c.Char)))
		case quiz.Cursor:
			parts = append(parts, StyleCursor("_"))
		default:
			parts = append(parts, StyleUntouched("_"))
		}
	}
	box := strings.Join(parts, " ")
	if shake {
		return "  " + box + "  " + Stylefail("✗")
	}
	return box
}
